package console

import "context"

// RowAction is an action button on a table row.
type RowAction string

const (
	RowView   RowAction = "view"
	RowEdit   RowAction = "edit"
	RowDelete RowAction = "delete"
	RowUpload RowAction = "upload"
)

// actionGrant maps each row action to the permission it needs.
var actionGrant = map[RowAction]string{
	RowView:   ActionRead,
	RowEdit:   ActionUpdate,
	RowDelete: ActionDelete,
	RowUpload: ActionUpdate,
}

// Column renders one cell of a record.
type Column[T any] struct {
	Title string
	Value func(T) string
}

// Row is one rendered table row: the cell values plus the actions the
// current session is allowed to take on the record.
type Row struct {
	Cells   []string
	Actions []RowAction
}

// Table renders records into rows, filtering row actions through the
// permission evaluator. While the evaluator has no session loaded, rows
// render with no actions at all.
type Table[T any] struct {
	columns []Column[T]
	actions []RowAction
	eval    *Evaluator
	module  string
}

func NewTable[T any](module string, eval *Evaluator, columns []Column[T], actions []RowAction) *Table[T] {
	return &Table[T]{
		columns: columns,
		actions: actions,
		eval:    eval,
		module:  module,
	}
}

// Header returns the column titles.
func (t *Table[T]) Header() []string {
	titles := make([]string, len(t.columns))
	for i, col := range t.columns {
		titles[i] = col.Title
	}
	return titles
}

// Render produces one row per record. The action set is the same for every
// row of a table, permissions are per module not per record.
func (t *Table[T]) Render(records []T) []Row {
	allowed := t.allowedActions()
	rows := make([]Row, len(records))
	for i, rec := range records {
		cells := make([]string, len(t.columns))
		for j, col := range t.columns {
			cells[j] = col.Value(rec)
		}
		rows[i] = Row{Cells: cells, Actions: allowed}
	}
	return rows
}

func (t *Table[T]) allowedActions() []RowAction {
	if t.eval == nil || !t.eval.Ready() {
		return nil
	}
	var allowed []RowAction
	for _, a := range t.actions {
		if t.eval.CanPerform(t.module, actionGrant[a]) {
			allowed = append(allowed, a)
		}
	}
	return allowed
}

// Footer is a computed aggregate for the visible rows.
type Footer struct {
	Label      string
	Total      Money
	Computable bool
}

// Money pairs an amount with its ISO currency code.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// SumMoney folds the visible rows' amounts into one total. When the amounts
// span more than one currency the sum is meaningless, so ok is false and the
// footer must show a non-computable marker instead of a number.
func SumMoney(amounts []Money) (Money, bool) {
	if len(amounts) == 0 {
		return Money{}, true
	}
	total := Money{Currency: amounts[0].Currency}
	for _, m := range amounts {
		if m.Currency != total.Currency {
			return Money{}, false
		}
		total.Amount += m.Amount
	}
	return total, true
}

// SumFooter renders a footer aggregate for the visible records.
func (t *Table[T]) SumFooter(label string, records []T, amount func(T) Money) Footer {
	amounts := make([]Money, len(records))
	for i, rec := range records {
		amounts[i] = amount(rec)
	}
	total, ok := SumMoney(amounts)
	return Footer{Label: label, Total: total, Computable: ok}
}

// ConfirmDelete deletes a record only after confirm returns true. When the
// user cancels no request is made and nil is returned.
func ConfirmDelete(ctx context.Context, c *Client, path, id string, confirm func() bool) error {
	if !confirm() {
		return nil
	}
	return Delete(ctx, c, path, id)
}
