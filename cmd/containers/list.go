package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.lepak.sg/containers/list"
)

var ErrPosition = errors.New("position is past the end of the list")

func (a *app) listCmd() *cobra.Command {
	var insertAfter, value, deleteAt int

	cmd := &cobra.Command{
		Use:   "list [ints...]",
		Short: "Build a linked list, edit it, and reverse it twice",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInts(args)
			if err != nil {
				return err
			}

			l := list.FromSlice(values)
			out := cmd.OutOrStdout()

			if insertAfter >= 0 {
				at, err := position(&l, insertAfter)
				if err != nil {
					return err
				}
				at.Insert(value)
				a.log.WithFields(logrus.Fields{
					"after": insertAfter,
					"value": value,
				}).Debug("inserted")
			}

			if deleteAt >= 0 {
				at, err := position(&l, deleteAt)
				if err != nil {
					return err
				}
				at.Delete()
				a.log.WithField("at", deleteAt).Debug("deleted")
			}

			orig := list.FromSlice(l.Slice())

			fmt.Fprintln(out, "list:    ", l.String())
			l.Reverse()
			fmt.Fprintln(out, "reversed:", l.String())
			l.Reverse()
			fmt.Fprintln(out, "restored:", l.String())
			fmt.Fprintln(out, "matches: ", l.Equal(&orig))

			return nil
		},
	}

	cmd.Flags().IntVar(&insertAfter, "insert-after", -1,
		"insert --value after this position (0 is the head)")
	cmd.Flags().IntVar(&value, "value", 0,
		"value to insert with --insert-after")
	cmd.Flags().IntVar(&deleteAt, "delete", -1,
		"delete the value at this position, after any insert")

	return cmd
}

// position walks n steps down the list from head.
// The Empty tail counts as a position.
func position(head *list.Node[int], n int) (*list.Node[int], error) {
	at := head
	for i := 0; i < n; i++ {
		at = at.Rest()
		if at == nil {
			return nil, fmt.Errorf("%w: %d", ErrPosition, n)
		}
	}
	return at, nil
}
