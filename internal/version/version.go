package version

import "runtime/debug"

// Populated at build time via -ldflags, with debug.ReadBuildInfo as the
// fallback for builds that skip them.
var (
	BuildVersion = "dev"
	GitSHA       = ""
	BuildTime    = ""
)

type Info struct {
	Version   string `json:"version"`
	GitSHA    string `json:"git_sha,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
}

func Get() Info {
	gitSHA := GitSHA
	buildTime := BuildTime

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if gitSHA == "" {
					gitSHA = s.Value
				}
			case "vcs.time":
				if buildTime == "" {
					buildTime = s.Value
				}
			}
		}
	}

	return Info{
		Version:   BuildVersion,
		GitSHA:    gitSHA,
		BuildTime: buildTime,
	}
}
