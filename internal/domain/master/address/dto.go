package address

import "github.com/aleclahey/payroll-backend-go/internal/pkg/validator"

type CreateAddressRequest struct {
	Street        string `json:"street" validate:"required,max=100"`
	City          string `json:"city" validate:"required,max=50"`
	Province      string `json:"province" validate:"required,max=50"`
	PostalCode    string `json:"postalCode" validate:"required,max=20"`
	Country       string `json:"country" validate:"required,max=50"`
	AddressTypeID int64  `json:"addressTypeId" validate:"required,gt=0"`
}

func (r *CreateAddressRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}
	if !validator.IsValidPostalCode(r.PostalCode, r.Country) {
		return validator.ValidationErrors{{
			Field:   "postalCode",
			Message: "postalCode is not valid for " + r.Country,
		}}
	}
	return nil
}

type AddressTypeResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type AddressResponse struct {
	ID              int64  `json:"id"`
	Street          string `json:"street"`
	City            string `json:"city"`
	Province        string `json:"province"`
	PostalCode      string `json:"postalCode"`
	Country         string `json:"country"`
	AddressTypeID   *int64 `json:"addressTypeId"`
	AddressTypeName string `json:"addressTypeName"`
}
