package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/baonguyenly/gfapi/pkg/gfapi"
	"github.com/baonguyenly/gfapi/pkg/gfclient"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

const defaultJSONIndent = "  "

// Common static errors used throughout the commands package.
var (
	ErrCredentialsRequired = errors.New("API key and secret are required (run 'gf configure' or set GF_KEY/GF_SECRET)")
	ErrTradeURLRequired    = errors.New("trade URL is required (--trade-url)")
)

// createClient builds a gfapi.Client from the resolved configuration.
func createClient() (gfapi.Client, error) {
	key := viper.GetString("key")
	secret := viper.GetString("secret")

	if key == "" || secret == "" {
		return nil, ErrCredentialsRequired
	}

	config := &gfapi.Config{
		Key:    key,
		Secret: secret,
		Debug:  viper.GetBool("verbose"),
	}

	if viper.GetBool("verbose") {
		logger, err := newZapLogger()
		if err != nil {
			return nil, err
		}

		config.Logger = logger
	}

	client, err := gfclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// renderObject writes a single object as JSON or YAML; the caller handles the
// table default.
func renderObject(object interface{}) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", defaultJSONIndent)

		return encoder.Encode(object)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return encoder.Encode(object)
	default:
		return nil
	}
}

// structuredOutput reports whether the selected format bypasses tables.
func structuredOutput() bool {
	output := viper.GetString("output")

	return output == OutputFormatJSON || output == OutputFormatYAML
}

func newTable(headers ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	headerCells := make([]any, len(headers))
	for i, header := range headers {
		headerCells[i] = header
	}
	table.Header(headerCells...)

	return table
}

func formatPrice(cents int) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(time.RFC3339)
}
