package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/domo-community/domo-go/pkg/domo"
	"github.com/domo-community/domo-go/pkg/domoclient"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// CreateClient builds a domo.Client from the resolved configuration
// (flags, environment, config file). Developer-token mode wins when both
// credential sets are present.
func CreateClient() (domo.Client, error) {
	config := &domo.Config{
		ClientID:     viper.GetString("client_id"),
		ClientSecret: viper.GetString("client_secret"),
	}

	if token := viper.GetString("developer_token"); token != "" {
		config.DeveloperToken = token
		config.InstanceDomain = viper.GetString("host")
	} else if host := viper.GetString("host"); host != "" {
		config.APIHost = host
	}

	client, err := domoclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

func listOptions(limit, offset int) *domo.ListOptions {
	return &domo.ListOptions{Limit: limit, Offset: offset}
}

// renderJSONOrYAML writes data to stdout in the requested structured
// format, reporting whether it handled the output.
func renderJSONOrYAML(data interface{}, format string) (bool, error) {
	switch format {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		err := encoder.Encode(data)
		if err != nil {
			return true, fmt.Errorf("encoding JSON: %w", err)
		}

		return true, nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		err := encoder.Encode(data)
		if err != nil {
			return true, fmt.Errorf("encoding YAML: %w", err)
		}

		return true, nil
	default:
		return false, nil
	}
}
