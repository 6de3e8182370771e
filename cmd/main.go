package main

import (
	"automotive-app/config"
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run resolves the client constants from the environment and prints them.
// A missing or invalid base url is reported but never fatal.
func run(out io.Writer) error {
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(cfg.LogLevel)

	constants, err := config.FromEnviron()
	if err != nil {
		return err
	}

	if err = constants.Validate(); err != nil {
		log.Warn("Endpoints are not usable", "key", config.BackendURLKey, "error", err)
		warning := fmt.Sprintf("warning: %v", err)
		if cfg.Colours {
			warning = color.New(color.FgYellow, color.OpBold).Render(warning)
		}
		fmt.Fprintln(out, warning)
	}

	render(out, constants)
	return nil
}

func render(out io.Writer, c config.Constants) {
	base, ok := c.BaseURL()
	if !ok {
		base = "<absent>"
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Name", "Value"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.AppendBulk([][]string{
		{"MESSAGE_DB_NAME", c.MessageDBName()},
		{"REGISTRATION_DB_NAME", c.RegistrationDBName()},
		{"LOCATION_DATA_DB_NAME", c.LocationDataDBName()},
		{"DEVICE_TYPE", c.DeviceType()},
		{config.BackendURLKey, base},
		{"ENDPOINT_SIGNUP", c.SignupEndpoint()},
		{"ENDPOINT_TOPIC", c.TopicEndpoint()},
	})
	table.Render()
}
