package entities

// Customer owns zero or more vehicles and zero or more invoices.
//
// Storage model (DynamoDB):
//   - PK: id
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}
