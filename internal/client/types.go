package client

// RepositoryInfo represents the subset of the Docker Hub v2 repository
// response this tool consumes. pull_count is the registry-reported cumulative
// download count; absent fields decode to their zero values.
type RepositoryInfo struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace"`
	PullCount int64  `json:"pull_count"`
	StarCount int64  `json:"star_count"`
}
