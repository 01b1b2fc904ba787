package graph

import "github.com/google/uuid"

// edgeNamespace scopes name-based edge ids to this catalog
var edgeNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("licensegraph/compatibility-edge"))

// EdgeID derives a stable id for an edge authored without one. The same
// source and target always produce the same id.
func EdgeID(sourceID, targetID string) string {
	return uuid.NewSHA1(edgeNamespace, []byte(NormalizeID(sourceID)+"|"+NormalizeID(targetID))).String()
}
