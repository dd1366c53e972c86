package display

import (
	"flag"
	"fmt"
	"sort"
	"strconv"
)

// DriverOption is a display driver option. This is used to
// configure a display driver.
type DriverOption struct {
	Name        string // name of the option
	Default     any    // default value of the option
	Value       any    // pointer to the value of the option
	Description string // description of the option
	Type        string // "int", "bool", "string", "float"
}

// InstalledDriver is a driver that has been installed. This is
// used to allow drivers to register their name.
type InstalledDriver struct {
	Name    string
	Options []DriverOption
	Driver
}

// InstalledDrivers is a list of all the installed drivers. This
// variable is exported so that it can be used by the main
// program to determine which drivers can be used. Drivers should
// call display.Install in their init() function.
var InstalledDrivers []*InstalledDriver

// GetDriver returns the driver with the given name, or nil if
// no driver with that name is installed.
func GetDriver(name string) Driver {
	if name == "auto" && len(InstalledDrivers) > 0 {
		return InstalledDrivers[0].Driver
	}
	for _, driver := range InstalledDrivers {
		if driver.Name == name {
			return driver.Driver
		}
	}

	return nil
}

// Names returns the names of the installed drivers.
func Names() []string {
	names := make([]string, 0, len(InstalledDrivers))
	for _, driver := range InstalledDrivers {
		names = append(names, driver.Name)
	}
	return names
}

// Install registers a display driver with the given name.
func Install(name string, driver Driver, options []DriverOption) {
	for _, installed := range InstalledDrivers {
		if installed.Name == name {
			panic(fmt.Sprintf("display: driver %q installed twice", name))
		}
	}

	InstalledDrivers = append(InstalledDrivers, &InstalledDriver{
		Name:    name,
		Options: options,
		Driver:  driver,
	})
}

// RegisterFlags iterates through all the display driver
// options and registers them with fs. Options shared by more
// than one driver are registered once under their own name and
// set every driver's value; unique options are prefixed with the
// driver name.
func RegisterFlags(fs *flag.FlagSet) {
	optionCounts := make(map[string]int)
	opts := make(map[string][]DriverOption)
	prefixes := make(map[string]string)

	for _, driver := range InstalledDrivers {
		for _, opt := range driver.Options {
			// track how many times an option is used
			optionCounts[opt.Name]++
			opts[opt.Name] = append(opts[opt.Name], opt)
			prefixes[opt.Name] = driver.Name
		}
	}

	names := make([]string, 0, len(opts))
	for name := range opts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, o := range names {
		// grab the first option
		opt := opts[o][0]

		// this option is unique and should be prefixed
		if optionCounts[o] == 1 {
			optName := fmt.Sprintf("%s-%s", prefixes[o], opt.Name)
			switch opt.Type {
			case "string":
				fs.StringVar(opt.Value.(*string), optName, opt.Default.(string), opt.Description)
			case "bool":
				fs.BoolVar(opt.Value.(*bool), optName, opt.Default.(bool), opt.Description)
			case "float":
				fs.Float64Var(opt.Value.(*float64), optName, opt.Default.(float64), opt.Description)
			case "int":
				fs.IntVar(opt.Value.(*int), optName, opt.Default.(int), opt.Description)
			}
			continue
		}

		// this requires an option merge
		multi := &multiValue{defaultValue: opt.Default}
		for _, mOpt := range opts[o] {
			multi.values = append(multi.values, mOpt.Value)
			if err := multi.assign(mOpt.Value, multi.String()); err != nil {
				panic(fmt.Sprintf("display: option %q: %v", o, err))
			}
		}
		fs.Var(multi, o, opt.Description)
	}
}

type multiValue struct {
	values       []any
	defaultValue any
}

func (m *multiValue) String() string {
	switch v := m.defaultValue.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// Set updates all the pointers with the provided value.
func (m *multiValue) Set(value string) error {
	for _, ptr := range m.values {
		if err := m.assign(ptr, value); err != nil {
			return err
		}
	}

	return nil
}

func (m *multiValue) assign(ptr any, value string) error {
	switch p := ptr.(type) {
	case *string:
		*p = value
	case *bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		*p = b
	case *float64:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		*p = f
	case *int:
		i, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		*p = i
	default:
		return fmt.Errorf("unknown type: %T", ptr) // should never happen, but just in case...
	}
	return nil
}

func (m *multiValue) IsBoolFlag() bool {
	_, isBool := m.defaultValue.(bool)
	return isBool
}

// noneDriver discards every frame.
type noneDriver struct{}

func (noneDriver) Initialize(Host) error { return nil }
func (noneDriver) FrameReady()           {}
func (noneDriver) Close() error          { return nil }

func init() {
	Install("none", noneDriver{}, nil)
}
