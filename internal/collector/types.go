package collector

// Record is the inventory snapshot of one host. Field order is the JSON
// field order.
type Record struct {
	CpuID                string      `json:"CpuId"`
	ComputerName         string      `json:"ComputerName"`
	OSVersion            string      `json:"OSVersion"`
	BIOSSerialNumber     string      `json:"BIOSSerialNumber"`
	CPU                  string      `json:"Cpu"`
	CPUCoreNumbers       int         `json:"CpuCoreNumbers"`
	Motherboard          Motherboard `json:"Motherboard"`
	System               SystemInfo  `json:"System"`
	GPU                  string      `json:"Gpu"`
	SystemArchitecture   string      `json:"SystemArchitecture"`
	LastBootUpTime       string      `json:"LastBootUpTime"`
	IPAddress            []string    `json:"IpAddress"`
	MACAddress           []string    `json:"MacAddress"`
	UserName             string      `json:"UserName"`
	InstalledSoftware    []string    `json:"InstalledSoftware"`
	DriveName            []string    `json:"DriveName"`
	DriveMemory          []float64   `json:"DriveMemory"`
	DriveAvailableMemory []float64   `json:"DriveAvailableMemory"`
	TotalRAM             string      `json:"TotalRAM"`
	Memory               MemoryInfo  `json:"Memory"`
	Displays             []Display   `json:"Displays"`
	UploadTime           string      `json:"UploadTime"`
}

// Motherboard holds baseboard details.
type Motherboard struct {
	Manufacturer string `json:"Manufacturer"`
	Product      string `json:"Product"`
	SerialNumber string `json:"SerialNumber"`
}

// SystemInfo holds computer manufacturer, model, serial number and UUID.
type SystemInfo struct {
	Manufacturer string `json:"Manufacturer"`
	Model        string `json:"Model"`
	SerialNumber string `json:"SerialNumber"`
	UUID         string `json:"UUID"`
}

// MemoryInfo summarises the installed memory modules.
type MemoryInfo struct {
	ModuleCount     int            `json:"ModuleCount"`
	TotalCapacityGB float64        `json:"TotalCapacityGB"`
	Types           []string       `json:"Types"`
	Modules         []MemoryModule `json:"Modules"`
}

// MemoryModule holds details for a single physical memory DIMM.
type MemoryModule struct {
	SizeGB       float64 `json:"SizeGB"`
	SpeedMHz     uint32  `json:"SpeedMHz"`
	Type         string  `json:"Type"`
	Manufacturer string  `json:"Manufacturer"`
	PartNumber   string  `json:"PartNumber"`
	Slot         string  `json:"Slot"`
}

// Display describes one monitor attached to the desktop.
type Display struct {
	DeviceName   string `json:"DeviceName"`
	Resolution   string `json:"Resolution"`
	Primary      bool   `json:"Primary"`
	Manufacturer string `json:"Manufacturer"`
	Model        string `json:"Model"`
}

// Endpoint is the first IPv4 address and the MAC of an active interface.
type Endpoint struct {
	IP  string
	MAC string
}

// Drive is a ready volume with its sizes in bytes.
type Drive struct {
	Name       string
	TotalBytes uint64
	FreeBytes  uint64
}
