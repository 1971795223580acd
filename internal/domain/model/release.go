package model

// Release describes the deployment-release event a notification is built for.
type Release struct {
	App          string
	Environment  string
	ReleaseURL   string
	ReleaseName  string
	ReleaseBody  string
	ReleaseActor string
	GitHubRepo   string
	Channel      string
	ArgoCDURL    string
}

// Target returns the "{app}-{environment}" deployment name.
func (r Release) Target() string {
	return r.App + "-" + r.Environment
}
