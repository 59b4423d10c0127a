package dto

import (
	"guesthouse/internal/domains/user/model"
	"guesthouse/shared"
	"guesthouse/shared/constant"
	gDto "guesthouse/shared/dto"
	"guesthouse/shared/timezone"
)

type ListUsersRequest struct {
	Role       string `json:"role"       validate:"omitempty,oneof=admin student"`
	Department string `json:"department" validate:"omitempty,max=100"`
	Search     string `json:"search"     validate:"omitempty,max=100"`
}

func (l *ListUsersRequest) ToFilter() gDto.FilterGroup {
	filters := []any{}

	if l.Role != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldRole, Value: l.Role, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if l.Department != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldDepartment, Value: l.Department, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if l.Search != constant.Empty {
		filters = append(filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{Field: model.FieldName, Value: l.Search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
				gDto.Filter{ArgName: "search_email", Field: model.FieldEmail, Value: l.Search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
			},
		})
	}

	return gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd}
}

type UserResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	StudentID  *string `json:"student_id"`
	Department *string `json:"department"`
	Phone      *string `json:"phone"`
	Role       string  `json:"role"`
	Active     bool    `json:"active"`
	LastLogin  *string `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.StudentID = model.StudentID
	r.Department = model.Department
	r.Phone = model.Phone
	r.Role = model.Role
	r.Active = model.Active

	if model.LastLogin != nil {
		lastLogin := timezone.Format(*model.LastLogin, constant.DateTimeFormat)
		r.LastLogin = &lastLogin
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
