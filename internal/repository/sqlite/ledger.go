package sqlite

import (
	"context"
	"fmt"

	"github.com/abdullahzahoor404/telco-scanner/internal/models"
)

// GetAllRecords returns every ledger row ordered by insertion id. The
// caller derives recency from that order alone; there is no timestamp
// tie-break.
func (r *Repository) GetAllRecords(ctx context.Context) ([]models.HistoricalRecord, error) {
	const opn = "repository.sqlite.GetAllRecords"

	rows, err := r.db.QueryContext(
		ctx,
		"SELECT date, operator, name, validity, details, price FROM offers ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query offers: %w", opn, err)
	}
	defer rows.Close()

	var records []models.HistoricalRecord
	for rows.Next() {
		var rec models.HistoricalRecord
		if err = rows.Scan(&rec.Date, &rec.Operator, &rec.Name, &rec.Validity, &rec.Details, &rec.Price); err != nil {
			return nil, fmt.Errorf("%s: failed to scan offer: %w", opn, err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration error: %w", opn, err)
	}

	return records, nil
}

// AppendRows inserts the run's rows in one transaction, preserving
// slice order so that append order keeps defining recency.
func (r *Repository) AppendRows(ctx context.Context, newRows []models.Row) error {
	const opn = "repository.sqlite.AppendRows"

	tx, err := r.db.BeginTx(ctx, nil) //nolint:varnamelen // tx its a default naming for transaction
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", opn, err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit just returns sql.ErrTxDone

	stmt, err := tx.PrepareContext(
		ctx,
		"INSERT INTO offers (date, operator, name, validity, details, price, remark) VALUES (?, ?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("%s: failed to prepare insert statement: %w", opn, err)
	}
	defer stmt.Close()

	for _, row := range newRows {
		_, err = stmt.ExecContext(ctx, row.Date, row.Operator, row.Name, row.Validity, row.Details, row.Price, row.Remark)
		if err != nil {
			return fmt.Errorf("%s: failed to insert offer %q: %w", opn, row.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit transaction: %w", opn, err)
	}

	return nil
}
