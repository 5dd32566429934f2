package psqlbuilder

import "github.com/Masterminds/squirrel"

// Dialect определяет формат плейсхолдеров для драйвера БД
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

// builder по умолчанию для PostgreSQL ($1, $2, ...)
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// For возвращает statement builder с плейсхолдерами для диалекта
func For(dialect Dialect) squirrel.StatementBuilderType {
	if dialect == DialectSQLite {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	}
	return builder
}

func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
