package renderer

import (
	"strings"

	"github.com/etnz/networth"
)

// RecordRow is a single asset or loan line.
type RecordRow struct {
	Date   string `json:"date"`
	Kind   string `json:"kind,omitempty"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// RecordList is a titled list of records with their total.
type RecordList struct {
	Title string      `json:"title"`
	Empty string      `json:"empty"`
	Kinds bool        `json:"kinds"` // show the Kind column
	Rows  []RecordRow `json:"rows"`
	Total string      `json:"total"`
}

// NewAssetList lists the ledger's assets in insertion order.
func NewAssetList(l *networth.Ledger, hidden bool) *RecordList {
	list := &RecordList{Title: "Assets", Empty: "No assets recorded yet.", Kinds: true}
	for a := range l.Assets() {
		list.Rows = append(list.Rows, RecordRow{
			Date:   a.Created().Format("2006-01-02"),
			Kind:   a.Kind().String(),
			Name:   cell(a.Name()),
			Amount: mask(a.Amount().String(), hidden),
		})
	}
	list.Total = mask(l.TotalAssetValue().String(), hidden)
	return list
}

// NewLoanList lists the ledger's loans in insertion order.
func NewLoanList(l *networth.Ledger, hidden bool) *RecordList {
	list := &RecordList{Title: "Loans", Empty: "No loans recorded yet."}
	for x := range l.Loans() {
		list.Rows = append(list.Rows, RecordRow{
			Date:   x.Created().Format("2006-01-02"),
			Name:   cell(x.Name()),
			Amount: mask(x.Amount().String(), hidden),
		})
	}
	list.Total = mask(l.TotalLoanValue().String(), hidden)
	return list
}

func mask(s string, hidden bool) string {
	if hidden {
		return Mask
	}
	return s
}

// cell escapes the pipes of a table cell.
func cell(s string) string { return strings.ReplaceAll(s, "|", `\|`) }
