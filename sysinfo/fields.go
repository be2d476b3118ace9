package sysinfo

// Field names one fact of the banner.
type Field string

const (
	FieldUser       Field = "user"
	FieldHostname   Field = "hostname"
	FieldDistro     Field = "distro"
	FieldPiModel    Field = "pimodel"
	FieldKernel     Field = "kernel"
	FieldUptime     Field = "uptime"
	FieldWM         Field = "wm"
	FieldDE         Field = "de"
	FieldShell      Field = "sh"
	FieldTerminal   Field = "term"
	FieldPackages   Field = "packages"
	FieldResolution Field = "resolution"
	FieldGPU        Field = "gpu"
	FieldCPU        Field = "cpu"
	FieldRAM        Field = "ram"
	FieldDisk       Field = "disk"
)

// DefaultFields is the display order of the banner. Remove an entry to hide
// the fact.
var DefaultFields = []Field{
	FieldUser,
	FieldHostname,
	FieldDistro,
	FieldPiModel,
	FieldKernel,
	FieldUptime,
	FieldWM,
	FieldDE,
	FieldShell,
	FieldTerminal,
	FieldPackages,
	FieldResolution,
	FieldGPU,
	FieldCPU,
	FieldRAM,
	FieldDisk,
}

// Collector gathers one fact. Collect returns the value to show and false
// when the fact does not apply to this host and its line is left out.
type Collector struct {
	Label   string
	Collect func(r *Run) (string, bool)
}

// Registry maps every field to its collector.
type Registry map[Field]Collector

// DefaultRegistry returns the collectors for all known fields.
func DefaultRegistry() Registry {
	return Registry{
		FieldUser:       {Label: "User", Collect: collectUser},
		FieldHostname:   {Label: "Hostname", Collect: collectHostname},
		FieldDistro:     {Label: "OS", Collect: collectDistro},
		FieldPiModel:    {Label: "Pi Model", Collect: collectPiModel},
		FieldKernel:     {Label: "Kernel", Collect: collectKernel},
		FieldUptime:     {Label: "Uptime", Collect: collectUptime},
		FieldWM:         {Label: "Window Manager", Collect: collectWindowManager},
		FieldDE:         {Label: "Desktop Environment", Collect: collectDesktop},
		FieldShell:      {Label: "Shell", Collect: collectShell},
		FieldTerminal:   {Label: "Terminal", Collect: collectTerminal},
		FieldPackages:   {Label: "Packages", Collect: collectPackages},
		FieldResolution: {Label: "Resolution", Collect: collectResolution},
		FieldGPU:        {Label: "GPU", Collect: collectGPU},
		FieldCPU:        {Label: "CPU", Collect: collectCPU},
		FieldRAM:        {Label: "RAM", Collect: collectRAM},
		FieldDisk:       {Label: "Disk", Collect: collectDisk},
	}
}
