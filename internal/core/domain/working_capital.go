package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkingCapitalKind classifies a working-capital row.
type WorkingCapitalKind string

const (
	KindAR        WorkingCapitalKind = "AR"
	KindAP        WorkingCapitalKind = "AP"
	KindInventory WorkingCapitalKind = "INVENTORY"
)

// IsValid reports whether the kind is one of the known values.
func (k WorkingCapitalKind) IsValid() bool {
	switch k {
	case KindAR, KindAP, KindInventory:
		return true
	}
	return false
}

// AR detail buckets. Rows carrying any other detail (or none) still count
// toward the AR total but toward no named bucket.
const (
	DetailMember  = "Member"
	DetailSponsor = "Sponsor"
	DetailOther   = "Other"
)

// WorkingCapitalEntry is one receivable, payable or inventory row.
//
// AR and AP rows belong to a book year; inventory rows are year-independent
// and carry a nil BookYearLabel. NumberOfPieces is only meaningful for
// inventory rows.
type WorkingCapitalEntry struct {
	EntryID        string             `json:"entryID"`
	BookYearLabel  *string            `json:"bookYearLabel,omitempty"`
	Kind           WorkingCapitalKind `json:"kind"`
	KindDetail     *string            `json:"kindDetail,omitempty"`
	Amount         decimal.Decimal    `json:"amount"`
	EntryDate      time.Time          `json:"entryDate"`
	NumberOfPieces *int               `json:"numberOfPieces,omitempty"`
	Description    string             `json:"description"`
}
