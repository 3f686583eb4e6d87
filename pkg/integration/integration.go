package integration

import (
	"fmt"
	"os"
	"path"
	"sync"
	"testing"

	"github.com/QuangTung97/user-replica/config"
	"github.com/QuangTung97/user-replica/pkg/migration"
	"github.com/jmoiron/sqlx"

	// for integration test, must not be imported in any main.go
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// TestCase ...
type TestCase struct {
	DB   *sqlx.DB
	Conf config.Config
}

var initOnce sync.Once

var globalConf config.Config
var globalDB *sqlx.DB
var globalErr error

// NewTestCase connects to the test database and runs migrations once.
// The test is skipped when MySQL is not reachable or -short is set.
func NewTestCase(t *testing.T) *TestCase {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test skipped in short mode")
	}

	initOnce.Do(func() {
		globalErr = initGlobal()
	})
	if globalErr != nil {
		t.Skipf("integration database unavailable: %v", globalErr)
	}

	return &TestCase{
		Conf: globalConf,
		DB:   globalDB,
	}
}

func initGlobal() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	rootDir := findRootDir()
	conf := config.LoadTestConfig(rootDir)

	db, err := sqlx.Connect("mysql", conf.MySQL.DSN())
	if err != nil {
		return err
	}
	migration.MigrateUpForTesting(rootDir, conf.MySQL.MigrateURL())

	globalConf = conf
	globalDB = db
	return nil
}

// Truncate ...
func (tc *TestCase) Truncate(table string) {
	tc.DB.MustExec(fmt.Sprintf("TRUNCATE %s", table))
}

func findRootDir() string {
	workdir, err := os.Getwd()
	if err != nil {
		panic(err)
	}

	directory := workdir
	for {
		files, err := os.ReadDir(directory)
		if err != nil {
			panic(err)
		}
		for _, file := range files {
			if file.IsDir() {
				continue
			}
			if file.Name() == "go.mod" {
				return directory
			}
		}

		parent := path.Dir(directory)
		if parent == directory {
			panic("go.mod not found")
		}
		directory = parent
	}
}
