package cluster

import (
	"strings"

	"github.com/clusterlab/clustering-service/pkg/types"
)

// Cluster pairs a centroid with the records currently assigned to it.
type Cluster struct {
	Centroid types.Centroid
	Records  []types.Record
}

// Partition is the complete assignment of all records to centroids for one
// iteration. Centroids carry map-valued coordinates and so cannot key a Go
// map directly; the partition is instead an ordered slice with one entry per
// centroid, in centroid-list order, compared by value with Equal. A partition
// is rebuilt from scratch every iteration, so no record ever appears in more
// than one cluster of a single snapshot.
type Partition []Cluster

// Equal reports whether two partitions have the same centroids and, per
// centroid, the same record identifiers in the same order.
func (p Partition) Equal(other Partition) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if !p[i].Centroid.Equal(other[i].Centroid) {
			return false
		}
		if len(p[i].Records) != len(other[i].Records) {
			return false
		}
		for j := range p[i].Records {
			if p[i].Records[j].ID != other[i].Records[j].ID {
				return false
			}
		}
	}
	return true
}

// RecordCount returns the total number of records across all clusters.
func (p Partition) RecordCount() int {
	n := 0
	for i := range p {
		n += len(p[i].Records)
	}
	return n
}

// Summary renders the cluster as its centroid followed by the assigned
// record identifiers, e.g. `Centroid (value=9) Record Identifiers: [6, 8]`.
func (c Cluster) Summary() string {
	var sb strings.Builder
	sb.WriteString(c.Centroid.String())
	sb.WriteString(" Record Identifiers: [")
	for i, r := range c.Records {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(r.ID)
	}
	sb.WriteString("]")
	return sb.String()
}

// Summary renders one Summary line per cluster. The engine itself performs
// no I/O; callers decide where this text goes.
func (p Partition) Summary() string {
	lines := make([]string, len(p))
	for i := range p {
		lines[i] = p[i].Summary()
	}
	return strings.Join(lines, "\n")
}
