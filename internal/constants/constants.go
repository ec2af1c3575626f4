package constants

import "time"

// CacheSchemaVersion is embedded in every cache key. Bump it whenever the
// extracted field shape changes so stale entries miss instead of being served.
const CacheSchemaVersion = "2"

const CacheKeyFormat = "member_%d_v%s"

var ScraperConfig = struct {
	ProfilePathFormat string
	UserAgent         string
	Timeout           time.Duration
}{
	ProfilePathFormat: "/member/%d",
	UserAgent:         "Mozilla/5.0 (compatible; MemberDirectoryBot/1.0)",
	Timeout:           15 * time.Second,
}

var FieldLabels = struct {
	LMNumber     string
	Name         string
	Surname      string
	Gaam         string
	Area         string
	MobileNumber string
	Status       string
}{
	LMNumber:     "LM Number",
	Name:         "Name",
	Surname:      "Surname",
	Gaam:         "Gaam",
	Area:         "Area",
	MobileNumber: "Mobile Number",
	Status:       "Status",
}

var MediaConfig = struct {
	ProfileImageSelector string
	PlaceholderImagePath string
}{
	ProfileImageSelector: "img.profile-photo",
	PlaceholderImagePath: "/images/default-member.png",
}

var QualityThresholds = struct {
	Excellent  float64
	Good       float64
	Acceptable float64
}{
	Excellent:  90,
	Good:       75,
	Acceptable: 60,
}

var BatchConfig = struct {
	DefaultChunkSize       int
	DefaultInterChunkDelay time.Duration
	MaxRangeSize           int
}{
	DefaultChunkSize:       5,
	DefaultInterChunkDelay: 2 * time.Second,
	MaxRangeSize:           100,
}

var ServerConfig = struct {
	ShutdownTimeout   time.Duration
	ReadHeaderTimeout time.Duration
}{
	ShutdownTimeout:   10 * time.Second,
	ReadHeaderTimeout: 5 * time.Second,
}
