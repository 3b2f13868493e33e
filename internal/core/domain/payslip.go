package domain

const (
	PayslipDraft  = "draft"
	PayslipIssued = "issued"
	PayslipPaid   = "paid"
)

// Payslip is a monthly pay statement for a member. Number is assigned by the
// server-side document sequence, never by the caller.
type Payslip struct {
	Meta       `bson:",inline"`
	Number     string  `json:"number" bson:"number" validate:"required"`
	MemberID   string  `json:"member_id" bson:"member_id" validate:"required"`
	MemberName string  `json:"member_name" bson:"member_name" validate:"required"`
	Month      int     `json:"month" bson:"month" validate:"required,min=1,max=12"`
	Year       int     `json:"year" bson:"year" validate:"required,min=2000"`
	BasicPay   float64 `json:"basic_pay" bson:"basic_pay" validate:"required,gt=0"`
	Allowances float64 `json:"allowances" bson:"allowances" validate:"gte=0"`
	Deductions float64 `json:"deductions" bson:"deductions" validate:"gte=0"`
	Currency   string  `json:"currency" bson:"currency" validate:"required,len=3"`
	Status     string  `json:"status" bson:"status" validate:"omitempty,oneof=draft issued paid"`
}

// NetPay is recomputed from the stored components on every read.
func (p *Payslip) NetPay() float64 {
	return p.BasicPay + p.Allowances - p.Deductions
}
