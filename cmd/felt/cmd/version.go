package cmd

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Print the felt CLI version and build time.",
		Usage: "felt version",
		Run: func([]string) error {
			printVersion()
			return nil
		},
	})
}
