package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/marisvali/tetris1/world"
	"github.com/spf13/cobra"
)

var compareFile string

var regressionCmd = &cobra.Command{
	Use:   "regression FILE...",
	Short: "Print the regression id of each playthrough",
	Long: "Replays each playthrough and prints a hash of all the states the " +
		"game went through. Save the output, change the World, then run again " +
		"with --compare to see which playthroughs now play out differently.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var expected map[string]string
		if compareFile != "" {
			f, err := os.Open(compareFile)
			if err != nil {
				return err
			}
			defer f.Close()
			if expected, err = readRegressionIds(f); err != nil {
				return err
			}
		}

		nChanged := 0
		for _, name := range args {
			data, err := os.ReadFile(name)
			if err != nil {
				return err
			}
			id, err := regressionId(data)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if expected == nil {
				fmt.Printf("%s %s\n", id, name)
				continue
			}
			if old, found := expected[name]; found && old != id {
				nChanged++
				fmt.Printf("%s %s\n", warn("CHANGED"), name)
			} else if found {
				fmt.Printf("%s %s\n", good("same"), name)
			} else {
				fmt.Printf("%s %s %s\n", emph("new"), id, name)
			}
		}
		if nChanged > 0 {
			return fmt.Errorf("%d playthroughs changed", nChanged)
		}
		return nil
	},
}

func init() {
	regressionCmd.Flags().StringVarP(&compareFile, "compare", "c", "",
		"output of an earlier run to compare with")
}

func regressionId(data []byte) (string, error) {
	p, err := world.DeserializePlaythrough(data)
	if err != nil {
		return "", err
	}
	return world.RegressionId(&p), nil
}

// readRegressionIds parses lines of "<id> <file>", as printed by the
// regression command, into a map from file to id.
func readRegressionIds(r io.Reader) (map[string]string, error) {
	ids := map[string]string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		id, name, found := strings.Cut(line, " ")
		if !found {
			return nil, fmt.Errorf("invalid line: %q", line)
		}
		ids[name] = id
	}
	return ids, scanner.Err()
}
