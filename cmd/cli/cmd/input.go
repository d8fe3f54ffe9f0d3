package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"mach-cost/core/architecture"
	"mach-cost/core/types"
	"mach-cost/internal/errors"
)

// readInput reads a file, or stdin when path is "-"
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, errors.Wrap(errors.TypeInput, "reading stdin", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeInput, err, "reading %s", path)
	}
	return data, nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// readArchitecture decodes a JSON or YAML architecture file
func readArchitecture(cmd *cobra.Command, path string) (types.Architecture, error) {
	var arch types.Architecture

	data, err := readInput(cmd, path)
	if err != nil {
		return arch, err
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, &arch)
	} else {
		err = json.Unmarshal(data, &arch)
	}
	if err != nil {
		return arch, errors.Parsing("invalid architecture "+path, err)
	}
	return arch, nil
}

// readMessage extracts the architecture from a recommendation message
func readMessage(cmd *cobra.Command, path string) (types.Architecture, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return types.Architecture{}, err
	}

	arch, err := architecture.Extract(string(data))
	if err != nil {
		return types.Architecture{}, err
	}
	return *arch, nil
}

// readMetrics decodes a JSON or YAML metrics file.
// YAML is normalized through JSON so decimals decode the same way.
func readMetrics(cmd *cobra.Command, path string) (types.BusinessMetrics, error) {
	var m types.BusinessMetrics

	data, err := readInput(cmd, path)
	if err != nil {
		return m, err
	}

	if isYAML(path) {
		var doc interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return m, errors.Parsing("invalid metrics "+path, err)
		}
		if data, err = json.Marshal(doc); err != nil {
			return m, errors.Parsing("invalid metrics "+path, err)
		}
	}

	if err := json.Unmarshal(data, &m); err != nil {
		return m, errors.Parsing("invalid metrics "+path, err)
	}
	return m, nil
}

// metricsFlags binds business metrics to command flags
type metricsFlags struct {
	file      string
	size      string
	orders    int64
	revenue   string
	users     int64
	products  int64
	countries int64
}

func (f *metricsFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.file, "metrics", "", "business metrics file (json or yaml); flags override its values")
	cmd.Flags().StringVar(&f.size, "size", "", "business size: startup, smb or enterprise (inferred when omitted)")
	cmd.Flags().Int64Var(&f.orders, "orders", 0, "monthly orders")
	cmd.Flags().StringVar(&f.revenue, "revenue", "", "monthly revenue in USD")
	cmd.Flags().Int64Var(&f.users, "users", 0, "users")
	cmd.Flags().Int64Var(&f.products, "products", 0, "products")
	cmd.Flags().Int64Var(&f.countries, "countries", 0, "countries")
}

// resolve merges the metrics file with any flags that were set
func (f *metricsFlags) resolve(cmd *cobra.Command) (types.BusinessMetrics, error) {
	var m types.BusinessMetrics
	if f.file != "" {
		var err error
		if m, err = readMetrics(cmd, f.file); err != nil {
			return m, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		m.Size = types.BusinessSize(f.size)
	}
	if flags.Changed("orders") {
		m.MonthlyOrders = f.orders
	}
	if flags.Changed("revenue") {
		rev, err := decimal.NewFromString(f.revenue)
		if err != nil {
			return m, errors.Wrapf(errors.TypeInput, err, "invalid --revenue %q", f.revenue)
		}
		m.MonthlyRevenue = rev
	}
	if flags.Changed("users") {
		m.Users = f.users
	}
	if flags.Changed("products") {
		m.Products = f.products
	}
	if flags.Changed("countries") {
		m.Countries = f.countries
	}
	return m, nil
}
