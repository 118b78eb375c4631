package scenefile

import (
	"fmt"
	"io/ioutil"
	"os"
	"reflect"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v2"
)

func MergeConfiguration(from, to interface{}) error {

	if reflect.TypeOf(from) != reflect.TypeOf(to) {
		return fmt.Errorf("Mismatching type %s and %s", reflect.TypeOf(from), reflect.TypeOf(to))
	}

	if reflect.TypeOf(from).Kind() != reflect.Ptr {
		return fmt.Errorf("Configuration can only be merged through pointers")
	}

	if reflect.ValueOf(from).IsNil() == true {
		return fmt.Errorf("Cannot merge into nil configuration")
	}

	if reflect.ValueOf(to).IsNil() == true {
		return nil
	}

	tFrom := reflect.TypeOf(from).Elem()
	vFrom := reflect.ValueOf(from).Elem()
	vTo := reflect.ValueOf(to).Elem()
	for i := 0; i < tFrom.NumField(); i++ {
		tField := tFrom.Field(i)
		if tField.Type.Kind() != reflect.Ptr {
			continue
		}

		fromField := vFrom.FieldByName(tField.Name)
		toField := vTo.FieldByName(tField.Name)

		if toField.IsNil() {
			continue
		}

		if fromField.IsNil() {
			fromField.Set(reflect.New(tField.Type.Elem()))
		}

		fromField.Elem().Set(toField.Elem())
	}

	return nil
}

func CheckNoNilField(v reflect.Value) error {
	if v.Type().Kind() != reflect.Struct {
		return fmt.Errorf("Field is not a struct")
	}
	for i := 0; i < v.Type().NumField(); i++ {
		f := v.Field(i)
		if f.Type().Kind() == reflect.Struct {
			if err := CheckNoNilField(f); err != nil {
				return err
			}
		}
		if f.Type().Kind() == reflect.Ptr {
			if f.IsNil() {
				return fmt.Errorf("field '%s' is nil", v.Type().Field(i).Name)
			}
		}
	}
	return nil
}

type NamingConfiguration struct {
	Directory  *string `short:"d" long:"directory" description:"Directory of the scene file (default: .)" yaml:"directory"`
	Descriptor *string `short:"n" long:"descriptor" description:"Short descriptor of the scene file (default: main)" yaml:"descriptor"`
	Version    *int    `short:"v" long:"version" description:"Version of the scene file (default: 1)" yaml:"version"`
	Extension  *string `short:"x" long:"extension" description:"Extension of the scene file, without dot (default: ma)" yaml:"extension"`
}

func RecommendedNamingConfiguration() NamingConfiguration {
	res := NamingConfiguration{
		Directory:  new(string),
		Descriptor: new(string),
		Version:    new(int),
		Extension:  new(string),
	}
	*res.Directory = DEFAULT_DIRECTORY
	*res.Descriptor = DEFAULT_DESCRIPTOR
	*res.Version = FIRST_VERSION
	*res.Extension = DEFAULT_EXTENSION
	return res
}

func (from *NamingConfiguration) Merge(to *NamingConfiguration) error {
	return MergeConfiguration(from, to)
}

func (c *NamingConfiguration) CheckAllFieldAreSet() error {
	return CheckNoNilField(reflect.ValueOf(*c))
}

// SceneFile builds the SceneFile described by a complete configuration.
func (c *NamingConfiguration) SceneFile() (*SceneFile, error) {
	if err := c.CheckAllFieldAreSet(); err != nil {
		return nil, fmt.Errorf("Incomplete naming configuration: %s", err)
	}
	return NewSceneFile(*c.Directory, *c.Descriptor, *c.Version, *c.Extension)
}

func ReadConfiguration(filename string) (*NamingConfiguration, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("Could not open '%s': %s", filename, err)
	}
	defer f.Close()
	txt, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("Could not read '%s': %s", filename, err)
	}

	res := &NamingConfiguration{}
	if err := yaml.Unmarshal(txt, res); err != nil {
		return nil, fmt.Errorf("Could not parse '%s': %s", filename, err)
	}

	return res, nil
}

func UserConfigurationPath() (string, error) {
	return xdg.ConfigFile("scenefile/naming.yml")
}

// LoadUserConfiguration returns the recommended configuration overridden
// by the user configuration file, if any.
func LoadUserConfiguration() (NamingConfiguration, error) {
	res := RecommendedNamingConfiguration()
	confPath, err := UserConfigurationPath()
	if err != nil {
		return res, nil
	}
	if _, err := os.Stat(confPath); os.IsNotExist(err) == true {
		return res, nil
	}
	userConfig, err := ReadConfiguration(confPath)
	if err != nil {
		return res, err
	}
	if err := res.Merge(userConfig); err != nil {
		return res, err
	}
	return res, nil
}

type HostConfiguration struct {
	Scene string `yaml:"scene"`
	Port  int    `yaml:"port"`
}

var defaultHostConfiguration = HostConfiguration{
	Scene: "",
	Port:  SCENEHOST_PORT,
}

func hostConfigurationPath() (string, error) {
	return xdg.ConfigFile("scenefile/scenehost.yml")
}

// GetHostConfiguration returns the scenehost configuration, falling back
// to defaults if it cannot be read.
func GetHostConfiguration() HostConfiguration {
	confPath, err := hostConfigurationPath()
	if err != nil {
		return defaultHostConfiguration
	}

	txt, err := ioutil.ReadFile(confPath)
	if err != nil {
		return defaultHostConfiguration
	}

	res := defaultHostConfiguration
	if err := yaml.Unmarshal(txt, &res); err != nil {
		return defaultHostConfiguration
	}
	return res
}

func (c HostConfiguration) Save() error {
	confPath, err := hostConfigurationPath()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(confPath, data, 0644)
}
