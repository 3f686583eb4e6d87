package migration

import (
	"errors"
	"fmt"
	"path"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

// Dir is the migrations directory relative to the module root
const Dir = "migrations"

func newMigrate(sourceDir string, dbURL string) *migrate.Migrate {
	m, err := migrate.New("file://"+sourceDir, dbURL)
	if err != nil {
		panic(err)
	}
	return m
}

func closeMigrate(m *migrate.Migrate) {
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		fmt.Println("[ERROR] close source:", sourceErr)
	}
	if dbErr != nil {
		fmt.Println("[ERROR] close database:", dbErr)
	}
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

// MigrateCommand returns the root command with up, down and force sub commands
func MigrateCommand(dbURL string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "database migration",
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "migrate up to the latest version",
			RunE: func(cmd *cobra.Command, args []string) error {
				m := newMigrate(Dir, dbURL)
				defer closeMigrate(m)
				return ignoreNoChange(m.Up())
			},
		},
		&cobra.Command{
			Use:   "down [n]",
			Short: "migrate down n steps, default 1",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				steps := 1
				if len(args) == 1 {
					n, err := strconv.Atoi(args[0])
					if err != nil {
						return err
					}
					steps = n
				}

				m := newMigrate(Dir, dbURL)
				defer closeMigrate(m)
				return ignoreNoChange(m.Steps(-steps))
			},
		},
		&cobra.Command{
			Use:   "force [version]",
			Short: "force set version, used after a failed migration",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				version, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}

				m := newMigrate(Dir, dbURL)
				defer closeMigrate(m)
				return m.Force(version)
			},
		},
	)
	return rootCmd
}

// MigrateUpForTesting runs every migration found under rootDir
func MigrateUpForTesting(rootDir string, dbURL string) {
	m := newMigrate(path.Join(rootDir, Dir), dbURL)
	defer closeMigrate(m)

	err := ignoreNoChange(m.Up())
	if err != nil {
		panic(err)
	}
}
