package model

// Category is the (room type, AC) pair a nightly rate is keyed by.
type Category struct {
	RoomType string
	AC       bool
}

// DefaultRates is the nightly rate table used to price stay requests.
var DefaultRates = map[Category]int64{
	{RoomType: TypeSingle, AC: false}: 300,
	{RoomType: TypeSingle, AC: true}:  400,
	{RoomType: TypeDouble, AC: false}: 600,
	{RoomType: TypeDouble, AC: true}:  800,
}

// RateFor looks up the nightly rate. The second result is false for an unknown category.
func RateFor(roomType string, ac bool) (int64, bool) {
	rate, ok := DefaultRates[Category{RoomType: roomType, AC: ac}]

	return rate, ok
}
