package main

import (
	"io"
	"os"

	"github.com/g-m-twostay/go-trinary/Queues"
	"github.com/g-m-twostay/go-trinary/Trees"
	"github.com/google/btree"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	applyCmd.Flags().String("script", "-", "script file, - for stdin")
	applyCmd.Flags().Uint32("hint", 64, "number of nodes to preallocate")
	if err := viper.BindPFlags(applyCmd.Flags()); err != nil {
		log.WithError(err).Errorf("failed to bind apply flags")
	}
	RootCmd.AddCommand(applyCmd)
}

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "apply an insert/delete script to a trinary tree",
	Long: `apply reads one operation per line, for example

  insert 5   # also "i 5" or "+ 5"
  delete 5   # also "d 5" or "del 5"

and prints how many copies of every mentioned value are left.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = cmd.InOrStdin()
		name := "stdin"
		if p := viper.GetString("script"); p != "" && p != "-" {
			f, err := os.Open(p)
			if err != nil {
				return errors.Wrapf(err, "failed to open script %s", p)
			}
			defer f.Close()
			in, name = f, p
		}

		ops, err := readScript(in)
		if err != nil {
			return errors.Wrapf(err, "failed to read script %s", name)
		}
		log.Infof("read %d operations from %s", ops.Size(), name)

		s := apply(Trees.New[int64](viper.GetUint32("hint")), ops, log.StandardLogger())
		s.render(cmd.OutOrStdout())
		if s.corrupt {
			return errors.New("tree is corrupt after applying the script")
		}
		return nil
	},
}

type valueCount struct {
	value int64
	count uint
}

type summary struct {
	inserts, deletes, misses int
	size                     uint
	corrupt                  bool
	counts                   []valueCount // ascending by value
}

// apply drains ops into tree in order. Deleting an absent value is a miss,
// not an error.
func apply(tree Trees.Tree[int64], ops *Queues.ArrayQueue[operation], logger log.FieldLogger) (s summary) {
	mentioned := btree.NewG[int64](8, func(a, b int64) bool { return a < b })
	for !ops.Empty() {
		op, _ := ops.Pop()
		mentioned.ReplaceOrInsert(op.value)
		entry := logger.WithFields(log.Fields{"line": op.line, "op": op.kind, "value": op.value})
		switch op.kind {
		case opInsert:
			tree.Insert(op.value)
			s.inserts++
		case opDelete:
			if !tree.Delete(op.value) {
				s.misses++
				entry.Debug("value not present")
				continue
			}
			s.deletes++
		}
		entry.Debug("applied")
	}

	s.size, s.corrupt = tree.Size(), tree.Corrupt()
	mentioned.Ascend(func(v int64) bool {
		s.counts = append(s.counts, valueCount{v, tree.Count(v)})
		return true
	})
	if s.corrupt {
		logger.WithField("size", s.size).Error("tree invariants are broken")
	}
	return
}

func (s summary) render(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Inserts", "Deletes", "Misses", "Size", "Corrupt"})
	t.AppendRow(table.Row{s.inserts, s.deletes, s.misses, s.size, s.corrupt})
	t.Render()

	if len(s.counts) == 0 {
		return
	}
	c := table.NewWriter()
	c.SetOutputMirror(w)
	c.AppendHeader(table.Row{"Value", "Copies"})
	for _, vc := range s.counts {
		c.AppendRow(table.Row{vc.value, vc.count})
	}
	c.Render()
}
