package termtypes

// ClientInfo describes the visitor as seen by the backend.
type ClientInfo struct {
	Username  string `json:"username"`
	IPAddress string `json:"ipAddress"`
	Hostname  string `json:"hostname"`
	UserAgent string `json:"userAgent"`
}

// ServerOS describes the backend host operating system.
type ServerOS struct {
	Name                string  `json:"name"`
	Version             string  `json:"version,omitempty"`
	Arch                string  `json:"arch"`
	AvailableProcessors int     `json:"availableProcessors"`
	SystemLoadAverage   float64 `json:"systemLoadAverage,omitempty"`
}

// ServerCPU describes the backend host processors.
type ServerCPU struct {
	Cores         int     `json:"cores"`
	SystemCPULoad float64 `json:"systemCpuLoad,omitempty"`
}

// ServerMemory reports memory usage in bytes.
type ServerMemory struct {
	HeapMax       uint64 `json:"heapMax"`
	HeapUsed      uint64 `json:"heapUsed"`
	TotalPhysical uint64 `json:"totalPhysical,omitempty"`
	UsedPhysical  uint64 `json:"usedPhysical,omitempty"`
}

// ServerRuntime describes the backend language runtime.
type ServerRuntime struct {
	Name      string `json:"vmName"`
	Version   string `json:"version"`
	StartTime int64  `json:"startTime"`
	Uptime    int64  `json:"uptime"`
}

// ServerInfo is the payload of GET /api/server/info. Only used for display.
type ServerInfo struct {
	Hostname   string        `json:"hostname"`
	ServerTime int64         `json:"serverTime"`
	OS         ServerOS      `json:"os"`
	CPU        ServerCPU     `json:"cpu"`
	Memory     ServerMemory  `json:"memory"`
	Runtime    ServerRuntime `json:"runtime"`
	Uptime     int64         `json:"uptime"`
}

// BootInfo is the compact payload of GET /api/server/boot-info.
type BootInfo struct {
	Hostname       string `json:"hostname"`
	OSName         string `json:"osName"`
	OSArch         string `json:"osArch"`
	CPUCores       int    `json:"cpuCores"`
	RuntimeVersion string `json:"runtimeVersion"`
	Uptime         int64  `json:"uptime"`
	TotalMemoryMB  uint64 `json:"totalMemoryMB"`
	FreeMemoryMB   uint64 `json:"freeMemoryMB"`
	UsedMemoryMB   uint64 `json:"usedMemoryMB"`
}

// DirectoryListing is the payload of GET /api/content/directory/{name}.
type DirectoryListing struct {
	Path     string   `json:"path"`
	Contents []string `json:"contents"`
	Error    string   `json:"error,omitempty"`
}

// FileContent is the payload of GET /api/content/file.
type FileContent struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Error   string `json:"error,omitempty"`
}

// BlogMetadata describes one blog post.
type BlogMetadata struct {
	Filename  string   `json:"filename"`
	Title     string   `json:"title"`
	Published string   `json:"published,omitempty"`
	Tags      []string `json:"tags"`
	Excerpt   string   `json:"excerpt"`
}

// PortfolioMetadata describes one portfolio project.
type PortfolioMetadata struct {
	Filename     string   `json:"filename"`
	Title        string   `json:"title"`
	Technologies []string `json:"technologies"`
	Company      string   `json:"company,omitempty"`
	Year         string   `json:"year,omitempty"`
	Excerpt      string   `json:"excerpt"`
}

// Resume is the payload of GET /api/content/resume.
type Resume struct {
	Text        string `json:"text"`
	DownloadURL string `json:"downloadUrl,omitempty"`
	Error       string `json:"error,omitempty"`
}

// ContactRequest is the body of POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactResponse is the reply to POST /api/contact.
type ContactResponse struct {
	ID        string `json:"id,omitempty"`
	EmailSent bool   `json:"emailSent"`
	Error     string `json:"error,omitempty"`
}
