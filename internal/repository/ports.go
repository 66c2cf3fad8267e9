package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	Insert(ctx context.Context, record any) error
	Upsert(ctx context.Context, record any, conflictColumns ...string) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetOneWhere(ctx context.Context, conds map[string]any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, order string, entities any) error
	DeleteWhere(ctx context.Context, model any, conds map[string]any) (int64, error)
}
