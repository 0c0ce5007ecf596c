package inventory

// ===============================
// Stock Status
// ===============================

type Status string

const (
	StatusZeroed Status = "zeroed"
	StatusLow    Status = "low"
	StatusNormal Status = "normal"
)

// DeriveStatus é função pura de quantidade vs estoque mínimo, recalculada
// a cada gravação do produto. O status nunca é fonte de verdade própria.
func DeriveStatus(quantity, minQuantity int) Status {
	switch {
	case quantity == 0:
		return StatusZeroed
	case quantity <= minQuantity:
		return StatusLow
	default:
		return StatusNormal
	}
}
