package zab

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ClusterConfiguration is the last-seen membership configuration of the
// ensemble. The broadcast core does not interpret the contents; it only
// round-trips the key/value bag through the cluster_config file.
type ClusterConfiguration map[string]string

// Equal reports whether c and o hold the same key/value pairs.
func (c ClusterConfiguration) Equal(o ClusterConfiguration) bool {
	if len(c) != len(o) {
		return false
	}
	for k, v := range c {
		ov, ok := o[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// WriteProperties serializes c in the line-oriented key=value format the
// cluster_config file uses. Keys are written in sorted order so the output
// is deterministic.
func (c ClusterConfiguration) WriteProperties(w io.Writer) error {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bw := bufio.NewWriter(w)
	for _, k := range keys {
		if strings.ContainsAny(k, "=\n") || strings.Contains(c[k], "\n") {
			return fmt.Errorf("property %q is not encodable", k)
		}
		if _, err := fmt.Fprintf(bw, "%s=%s\n", k, c[k]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadProperties parses the key=value format written by WriteProperties.
// Blank lines and lines starting with '#' or '!' are skipped, matching the
// property files produced by compatible implementations.
func ReadProperties(r io.Reader) (ClusterConfiguration, error) {
	conf := make(ClusterConfiguration)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "!") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("malformed property line %q", line)
		}
		conf[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return conf, nil
}
