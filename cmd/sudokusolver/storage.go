package main

import (
	"github.com/spf13/cobra"

	"github.com/CorruptedArk/sudoku-solver-go/dbprep"
	"github.com/CorruptedArk/sudoku-solver-go/logger"
)

// storageCommand groups the store maintenance commands the
// solving service relies on.  Neither is needed for plain
// file-in/file-out solving.
func storageCommand() *cobra.Command {
	storage := &cobra.Command{
		Use:   "storage",
		Short: "prepare or clear the solver service's stores",
	}
	storage.AddCommand(
		&cobra.Command{
			Use:   "prepare",
			Short: "install the database schema and seed the puzzle library",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := dbprep.EnsureData(); err != nil {
					return err
				}
				log := logger.Logger()
				log.Info().Msg("storage prepared")
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "flush the cache and rebuild the database from scratch",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := dbprep.ReinitializeAll(); err != nil {
					return err
				}
				log := logger.Logger()
				log.Info().Msg("storage reinitialized")
				return nil
			},
		},
	)
	return storage
}
