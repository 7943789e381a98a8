package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(databaseURL, sqlitePath string) (*gorm.DB, error) {
	// DATABASE_URL があれば最優先で使う
	if databaseURL != "" {
		return gorm.Open(postgres.Open(databaseURL), &gorm.Config{TranslateError: true})
	}

	// ローカルはSQLiteファイル。外部キーはPRAGMAで有効にする
	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)", sqlitePath)
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
}
