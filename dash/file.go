package dash

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v4"
)

// Names accepts a single column name or a list of names.
type Names []string

func (n *Names) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}
		*n = Names{str}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*n = Names(list)
		return nil
	default:
		return fmt.Errorf("line %d: column names should be a string or a list of strings", node.Line)
	}
}

func Decode(r io.Reader) (Dashboard, error) {
	d := Default()
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return d, err
	}
	if err := d.Validate(); err != nil {
		return d, err
	}
	return d, nil
}

// Load decodes the dashboard file. Relative sources and output directory are
// resolved against the directory of the file.
func Load(file string) (Dashboard, error) {
	r, err := os.Open(file)
	if err != nil {
		return Dashboard{}, err
	}
	defer r.Close()

	d, err := Decode(r)
	if err != nil {
		return d, fmt.Errorf("%s: %w", file, err)
	}
	dir := filepath.Dir(file)
	d.Output = resolvePath(dir, d.Output)
	for i := range d.Charts {
		d.Charts[i].Source = resolvePath(dir, d.Charts[i].Source)
	}
	return d, nil
}

func resolvePath(dir, file string) string {
	if file == "" || filepath.IsAbs(file) || isRemote(file) {
		return file
	}
	return filepath.Join(dir, file)
}
