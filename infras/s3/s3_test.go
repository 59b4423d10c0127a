package s3_test

import (
	"testing"

	"guesthouse/infras/s3"

	"github.com/stretchr/testify/assert"
)

func TestObjectNameFromURL(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		url    string
		want   string
	}{
		{name: "receipt under domain", domain: "https://cdn.example.com", url: "https://cdn.example.com/booking/abc.pdf", want: "booking/abc.pdf"},
		{name: "domain with trailing slash", domain: "https://cdn.example.com/", url: "https://cdn.example.com/booking/abc.pdf", want: "booking/abc.pdf"},
		{name: "foreign url", domain: "https://cdn.example.com", url: "https://other.example.com/booking/abc.pdf", want: ""},
		{name: "no domain configured", domain: "", url: "https://cdn.example.com/booking/abc.pdf", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s3.ObjectNameFromURL(tt.domain, tt.url))
		})
	}
}
