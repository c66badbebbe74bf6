package ledger

// PaymentRecord is the persisted shape of both accounts for one loan. It is
// upserted whole; the backing store never sees individual row edits.
type PaymentRecord struct {
	ShowroomRows          []Entry        `json:"showroom_rows"`
	EntryTotals           Totals         `json:"entry_totals"`
	AutocreditsRows       []ReceiptEntry `json:"autocredits_rows"`
	AutocreditsTotals     Buckets        `json:"autocredits_totals"`
	IsVerified            bool           `json:"is_verified"`
	IsAutocreditsVerified bool           `json:"is_autocredits_verified"`
}

// Ledgers rehydrates the two account ledgers from a stored record.
func (r PaymentRecord) Ledgers() (*Showroom, *Autocredits) {
	return &Showroom{Entries: r.ShowroomRows, Verified: r.IsVerified},
		&Autocredits{Entries: r.AutocreditsRows, Verified: r.IsAutocreditsVerified}
}

// Snapshot folds the two ledgers and the latest derived figures back into
// the persisted shape.
func Snapshot(s *Showroom, a *Autocredits, d Derived) PaymentRecord {
	return PaymentRecord{
		ShowroomRows:          s.Entries,
		EntryTotals:           d.Showroom.Totals,
		AutocreditsRows:       a.Entries,
		AutocreditsTotals:     d.Buckets,
		IsVerified:            s.Verified,
		IsAutocreditsVerified: a.Verified,
	}
}
