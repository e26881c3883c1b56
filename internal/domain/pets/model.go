package pets

// Pet es dato de referencia estático: el workflow lo lee pero nunca lo modifica.
type Pet struct {
	ID               int64
	Name             string
	Type             string // dog, cat, ...
	Size             string
	ActivityLevel    string
	MaintenanceLevel string
	Budget           string
}
