package cmd

import (
	"fmt"
	"text/tabwriter"
)

func init() {
	RegisterCommand(&Command{
		Name:  "list",
		Short: "List the animation table",
		Long: `List the animations of the configured variant in selection order.

Flags:
  -config FILE   Config file (default: marquee.yaml if present)`,
		Usage: "marquee list [-config FILE]",
		Run:   runList,
	})
}

func runList(args []string) error {
	var path string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-config", "--config", "-c":
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a value", args[i])
			}
			i++
			path = args[i]
		default:
			return fmt.Errorf("unexpected argument %q\n\nUsage: marquee list [-config FILE]", args[i])
		}
	}

	r, err := loadConfig(path)
	if err != nil {
		return err
	}

	sim := newSimulator(r, nil, nil)
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tNAME\n")
	for _, a := range sim.library.All() {
		fmt.Fprintf(tw, "%d\t%s\n", a.ID, a.Name)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "\nvariant=%s mode=%s reset_policy=%s tick=%s\n",
		r.Variant, r.InitialMode, r.ResetPolicy, r.Timebase.Period())
	return nil
}
