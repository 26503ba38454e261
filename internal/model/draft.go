package model

// ExpenseDraft is an in-progress, not-yet-submitted expense entry.
// Date is fixed to the day the draft was created and is not editable.
type ExpenseDraft struct {
	Date        string
	Amount      string
	Category    string
	Description string
}

// Reset clears the mutable fields after a successful submission.
// Category and date stay put for the next entry.
func (d *ExpenseDraft) Reset() {
	d.Amount = ""
	d.Description = ""
}
