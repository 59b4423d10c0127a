package model

import (
	"time"

	"guesthouse/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID         = "id"
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldStudentID  = "student_id"
	FieldDepartment = "department"
	FieldPhone      = "phone"
	FieldRole       = "role"
	FieldActive     = "active"
	FieldLastLogin  = "last_login"
)

type User struct {
	ID         string     `db:"id"`
	Name       string     `db:"name"`
	Email      string     `db:"email"`
	Password   string     `db:"password"`
	StudentID  *string    `db:"student_id"`
	Department *string    `db:"department"`
	Phone      *string    `db:"phone"`
	Role       string     `db:"role"`
	Active     bool       `db:"active"`
	LastLogin  *time.Time `db:"last_login"`
	model.Metadata
}
