package store

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Repo struct {
	Pool PgxIface
}

type PgxIface interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// querier is satisfied by both the pool and a pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func New(pool PgxIface) *Repo { return &Repo{Pool: pool} }

var (
	_ MenuGroupRepository = (*Repo)(nil)
	_ ProductRepository   = (*Repo)(nil)
	_ MenuRepository      = (*Repo)(nil)
	_ TableRepository     = (*Repo)(nil)
	_ OrderRepository     = (*Repo)(nil)
)

// valuesList renders one "($1,$n,...)" tuple per row for a multi-row INSERT.
// $1 is the shared parent id; row values are numbered after it and returned flattened.
func valuesList(shared int, rows [][]any) (string, []any) {
	var (
		sb   strings.Builder
		args []any
	)
	n := shared
	for i, row := range rows {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('(')
		for p := 1; p <= shared; p++ {
			sb.WriteString("$" + strconv.Itoa(p) + ",")
		}
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(',')
			}
			n++
			sb.WriteString("$" + strconv.Itoa(n))
			args = append(args, v)
		}
		sb.WriteByte(')')
	}
	return sb.String(), args
}

// insertReturningSeqs runs a multi-row INSERT ... RETURNING seq. The serial is drawn
// row by row in VALUES order, so the sorted seqs line up with the inserted rows.
func insertReturningSeqs(ctx context.Context, q querier, sql string, args []any) ([]int64, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var seqs []int64
	for rows.Next() {
		var seq int64
		if err := rows.Scan(&seq); err != nil {
			return nil, err
		}
		seqs = append(seqs, seq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	slices.Sort(seqs)
	return seqs, nil
}
