package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/store"

	_ "modernc.org/sqlite"
)

// SQLiteRepository owns the database handle and hands out per-entity stores.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Stores exposes the repository through the store ports.
func (r *SQLiteRepository) Stores() store.Stores {
	return store.Stores{
		Transactions: &TransactionRepository{db: r.db},
		Budgets:      &BudgetRepository{db: r.db},
		Goals:        &GoalRepository{db: r.db},
	}
}

func storeErr(err error) error {
	return errors.Join(core.ErrStoreUnavailable, err)
}

func encodeDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func decodeDate(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

type TransactionRepository struct {
	db *sql.DB
}

const transactionColumns = "id, type, amount_paise, category, payment_method, date, description, is_recurring, created_at"

func scanTransaction(row interface{ Scan(...any) error }) (core.Transaction, error) {
	var (
		t                core.Transaction
		typ, date, created string
	)
	if err := row.Scan(&t.ID, &typ, &t.Amount.Paise, &t.Category, &t.PaymentMethod, &date, &t.Description, &t.IsRecurring, &created); err != nil {
		return core.Transaction{}, err
	}
	t.Type = core.TransactionType(typ)
	var err error
	if t.Date, err = decodeDate(date); err != nil {
		return core.Transaction{}, fmt.Errorf("decode transaction date: %w", err)
	}
	if t.CreatedAt, err = decodeDate(created); err != nil {
		return core.Transaction{}, fmt.Errorf("decode transaction created_at: %w", err)
	}
	return t, nil
}

func (r *TransactionRepository) List(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+transactionColumns+" FROM transactions ORDER BY date DESC, id DESC")
	if err != nil {
		return nil, storeErr(fmt.Errorf("list transactions: %w", err))
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, storeErr(fmt.Errorf("scan transaction: %w", err))
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(fmt.Errorf("list transactions: %w", err))
	}
	return out, nil
}

func (r *TransactionRepository) Get(ctx context.Context, id int64) (core.Transaction, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+transactionColumns+" FROM transactions WHERE id = ?", id)
	t, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, core.ErrNotFound
	}
	if err != nil {
		return core.Transaction{}, storeErr(fmt.Errorf("get transaction %d: %w", id, err))
	}
	return t, nil
}

func (r *TransactionRepository) Create(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	if t.Date.IsZero() {
		t.Date = time.Now()
	}
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}
	t.CreatedAt = time.Now().UTC().Truncate(time.Second)

	row := r.db.QueryRowContext(ctx,
		`INSERT INTO transactions (id, type, amount_paise, category, payment_method, date, description, is_recurring, created_at)
		 VALUES ((SELECT COALESCE(MAX(id), 0) + 1 FROM transactions), ?, ?, ?, ?, ?, ?, ?, ?)
		 RETURNING id`,
		string(t.Type), t.Amount.Paise, t.Category, t.PaymentMethod, encodeDate(t.Date), t.Description, t.IsRecurring, encodeDate(t.CreatedAt))
	if err := row.Scan(&t.ID); err != nil {
		return core.Transaction{}, storeErr(fmt.Errorf("create transaction: %w", err))
	}
	return t, nil
}

func (r *TransactionRepository) Update(ctx context.Context, id int64, p store.TransactionPatch) (core.Transaction, error) {
	existing, err := r.Get(ctx, id)
	if err != nil {
		return core.Transaction{}, err
	}
	merged := p.Apply(existing)
	merged.ID = id
	if err := merged.Validate(); err != nil {
		return core.Transaction{}, err
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE transactions
		 SET type = ?, amount_paise = ?, category = ?, payment_method = ?, date = ?, description = ?, is_recurring = ?
		 WHERE id = ?`,
		string(merged.Type), merged.Amount.Paise, merged.Category, merged.PaymentMethod, encodeDate(merged.Date), merged.Description, merged.IsRecurring, id)
	if err != nil {
		return core.Transaction{}, storeErr(fmt.Errorf("update transaction %d: %w", id, err))
	}
	return merged, nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id int64) (core.Transaction, error) {
	existing, err := r.Get(ctx, id)
	if err != nil {
		return core.Transaction{}, err
	}
	if _, err := r.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id); err != nil {
		return core.Transaction{}, storeErr(fmt.Errorf("delete transaction %d: %w", id, err))
	}
	return existing, nil
}

type BudgetRepository struct {
	db *sql.DB
}

const budgetColumns = "id, category, amount_paise, period, start_date, created_at"

func scanBudget(row interface{ Scan(...any) error }) (core.Budget, error) {
	var (
		b                    core.Budget
		period, start, created string
	)
	if err := row.Scan(&b.ID, &b.Category, &b.Amount.Paise, &period, &start, &created); err != nil {
		return core.Budget{}, err
	}
	b.Period = core.BudgetPeriod(period)
	var err error
	if b.StartDate, err = decodeDate(start); err != nil {
		return core.Budget{}, fmt.Errorf("decode budget start_date: %w", err)
	}
	if b.CreatedAt, err = decodeDate(created); err != nil {
		return core.Budget{}, fmt.Errorf("decode budget created_at: %w", err)
	}
	return b, nil
}

func (r *BudgetRepository) List(ctx context.Context) ([]core.Budget, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+budgetColumns+" FROM budgets ORDER BY id")
	if err != nil {
		return nil, storeErr(fmt.Errorf("list budgets: %w", err))
	}
	defer rows.Close()

	var out []core.Budget
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, storeErr(fmt.Errorf("scan budget: %w", err))
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(fmt.Errorf("list budgets: %w", err))
	}
	return out, nil
}

func (r *BudgetRepository) Get(ctx context.Context, id int64) (core.Budget, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+budgetColumns+" FROM budgets WHERE id = ?", id)
	b, err := scanBudget(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Budget{}, core.ErrNotFound
	}
	if err != nil {
		return core.Budget{}, storeErr(fmt.Errorf("get budget %d: %w", id, err))
	}
	return b, nil
}

func (r *BudgetRepository) Create(ctx context.Context, b core.Budget) (core.Budget, error) {
	if b.StartDate.IsZero() {
		b.StartDate = time.Now()
	}
	if err := b.Validate(); err != nil {
		return core.Budget{}, err
	}
	b.CreatedAt = time.Now().UTC().Truncate(time.Second)

	row := r.db.QueryRowContext(ctx,
		`INSERT INTO budgets (id, category, amount_paise, period, start_date, created_at)
		 VALUES ((SELECT COALESCE(MAX(id), 0) + 1 FROM budgets), ?, ?, ?, ?, ?)
		 RETURNING id`,
		b.Category, b.Amount.Paise, string(b.Period), encodeDate(b.StartDate), encodeDate(b.CreatedAt))
	if err := row.Scan(&b.ID); err != nil {
		return core.Budget{}, storeErr(fmt.Errorf("create budget: %w", err))
	}
	return b, nil
}

func (r *BudgetRepository) Update(ctx context.Context, id int64, p store.BudgetPatch) (core.Budget, error) {
	existing, err := r.Get(ctx, id)
	if err != nil {
		return core.Budget{}, err
	}
	merged := p.Apply(existing)
	merged.ID = id
	if err := merged.Validate(); err != nil {
		return core.Budget{}, err
	}

	_, err = r.db.ExecContext(ctx,
		"UPDATE budgets SET category = ?, amount_paise = ?, period = ?, start_date = ? WHERE id = ?",
		merged.Category, merged.Amount.Paise, string(merged.Period), encodeDate(merged.StartDate), id)
	if err != nil {
		return core.Budget{}, storeErr(fmt.Errorf("update budget %d: %w", id, err))
	}
	return merged, nil
}

func (r *BudgetRepository) Delete(ctx context.Context, id int64) (core.Budget, error) {
	existing, err := r.Get(ctx, id)
	if err != nil {
		return core.Budget{}, err
	}
	if _, err := r.db.ExecContext(ctx, "DELETE FROM budgets WHERE id = ?", id); err != nil {
		return core.Budget{}, storeErr(fmt.Errorf("delete budget %d: %w", id, err))
	}
	return existing, nil
}

type GoalRepository struct {
	db *sql.DB
}

const goalColumns = "id, name, category, target_amount_paise, current_amount_paise, target_date, created_at"

func scanGoal(row interface{ Scan(...any) error }) (core.Goal, error) {
	var (
		g               core.Goal
		target, created string
	)
	if err := row.Scan(&g.ID, &g.Name, &g.Category, &g.TargetAmount.Paise, &g.CurrentAmount.Paise, &target, &created); err != nil {
		return core.Goal{}, err
	}
	var err error
	if g.TargetDate, err = decodeDate(target); err != nil {
		return core.Goal{}, fmt.Errorf("decode goal target_date: %w", err)
	}
	if g.CreatedAt, err = decodeDate(created); err != nil {
		return core.Goal{}, fmt.Errorf("decode goal created_at: %w", err)
	}
	return g, nil
}

func (r *GoalRepository) List(ctx context.Context) ([]core.Goal, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+goalColumns+" FROM goals ORDER BY id")
	if err != nil {
		return nil, storeErr(fmt.Errorf("list goals: %w", err))
	}
	defer rows.Close()

	var out []core.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, storeErr(fmt.Errorf("scan goal: %w", err))
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(fmt.Errorf("list goals: %w", err))
	}
	return out, nil
}

func (r *GoalRepository) Get(ctx context.Context, id int64) (core.Goal, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+goalColumns+" FROM goals WHERE id = ?", id)
	g, err := scanGoal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Goal{}, core.ErrNotFound
	}
	if err != nil {
		return core.Goal{}, storeErr(fmt.Errorf("get goal %d: %w", id, err))
	}
	return g, nil
}

func (r *GoalRepository) Create(ctx context.Context, g core.Goal) (core.Goal, error) {
	if err := g.Validate(); err != nil {
		return core.Goal{}, err
	}
	g.CreatedAt = time.Now().UTC().Truncate(time.Second)

	row := r.db.QueryRowContext(ctx,
		`INSERT INTO goals (id, name, category, target_amount_paise, current_amount_paise, target_date, created_at)
		 VALUES ((SELECT COALESCE(MAX(id), 0) + 1 FROM goals), ?, ?, ?, ?, ?, ?)
		 RETURNING id`,
		g.Name, g.Category, g.TargetAmount.Paise, g.CurrentAmount.Paise, encodeDate(g.TargetDate), encodeDate(g.CreatedAt))
	if err := row.Scan(&g.ID); err != nil {
		return core.Goal{}, storeErr(fmt.Errorf("create goal: %w", err))
	}
	return g, nil
}

func (r *GoalRepository) Update(ctx context.Context, id int64, p store.GoalPatch) (core.Goal, error) {
	existing, err := r.Get(ctx, id)
	if err != nil {
		return core.Goal{}, err
	}
	merged := p.Apply(existing)
	merged.ID = id
	if err := merged.Validate(); err != nil {
		return core.Goal{}, err
	}

	_, err = r.db.ExecContext(ctx,
		"UPDATE goals SET name = ?, category = ?, target_amount_paise = ?, current_amount_paise = ?, target_date = ? WHERE id = ?",
		merged.Name, merged.Category, merged.TargetAmount.Paise, merged.CurrentAmount.Paise, encodeDate(merged.TargetDate), id)
	if err != nil {
		return core.Goal{}, storeErr(fmt.Errorf("update goal %d: %w", id, err))
	}
	return merged, nil
}

func (r *GoalRepository) Delete(ctx context.Context, id int64) (core.Goal, error) {
	existing, err := r.Get(ctx, id)
	if err != nil {
		return core.Goal{}, err
	}
	if _, err := r.db.ExecContext(ctx, "DELETE FROM goals WHERE id = ?", id); err != nil {
		return core.Goal{}, storeErr(fmt.Errorf("delete goal %d: %w", id, err))
	}
	return existing, nil
}
