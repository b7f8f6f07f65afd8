package networth

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AssetKind is the category of an asset.
type AssetKind int

const (
	Cash AssetKind = iota
	Stock
	Fund
	RealEstate
)

func (k AssetKind) String() string {
	switch k {
	case Cash:
		return "cash"
	case Stock:
		return "stock"
	case Fund:
		return "fund"
	case RealEstate:
		return "real-estate"
	default:
		return "unknown"
	}
}

// ParseAssetKind parses a string into an AssetKind.
func ParseAssetKind(s string) (AssetKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cash", "":
		return Cash, nil
	case "stock", "stocks":
		return Stock, nil
	case "fund", "funds":
		return Fund, nil
	case "real-estate", "realestate", "property":
		return RealEstate, nil
	default:
		return Cash, fmt.Errorf("unknown asset kind %q", s)
	}
}

// AssetRecord is a user-entered asset. It is an immutable value.
type AssetRecord struct {
	id      uuid.UUID
	kind    AssetKind
	name    string
	amount  Money
	created time.Time
}

func (a AssetRecord) ID() uuid.UUID      { return a.id }
func (a AssetRecord) Kind() AssetKind    { return a.kind }
func (a AssetRecord) Name() string       { return a.name }
func (a AssetRecord) Amount() Money      { return a.amount }
func (a AssetRecord) Created() time.Time { return a.created }

func (a AssetRecord) String() string {
	return fmt.Sprintf("%s %s %s", a.kind, a.name, a.amount)
}

func (a AssetRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.id)
	w.Append("kind", a.kind.String())
	w.Append("name", a.name)
	w.EmbedFrom(a.amount)
	w.Append("created", a.created.Format(time.RFC3339))
	return w.MarshalJSON()
}

// LoanRecord is a user-entered loan. It is an immutable value.
type LoanRecord struct {
	id      uuid.UUID
	name    string
	amount  Money
	created time.Time
}

func (l LoanRecord) ID() uuid.UUID      { return l.id }
func (l LoanRecord) Name() string       { return l.name }
func (l LoanRecord) Amount() Money      { return l.amount }
func (l LoanRecord) Created() time.Time { return l.created }

func (l LoanRecord) String() string {
	return fmt.Sprintf("loan %s %s", l.name, l.amount)
}

func (l LoanRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", l.id)
	w.Append("name", l.name)
	w.EmbedFrom(l.amount)
	w.Append("created", l.created.Format(time.RFC3339))
	return w.MarshalJSON()
}
