package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "bleacherbot",
		Short: "Weekly team news digest: scrape, synthesize, deliver",
	}
	root.AddCommand(runCMD(), previewCMD(), daemonCMD())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
