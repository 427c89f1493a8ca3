package entity

// Supplier emisor de CFDI identificado por su RFC. Se crea una sola vez y nunca se actualiza.
type Supplier struct {
	TaxID string // RFC
	Name  string
}
