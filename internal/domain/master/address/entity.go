package address

type AddressType struct {
	ID          int64
	Name        string
	Description string
}

type Address struct {
	ID            int64
	Street        string
	City          string
	Province      string
	PostalCode    string
	Country       string
	AddressTypeID *int64
	AddressType   string
}
