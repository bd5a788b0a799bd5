package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clusterlab/clustering-service/internal/cluster"
	"github.com/clusterlab/clustering-service/pkg/types"
)

func samplePartition() cluster.Partition {
	return cluster.Partition{
		{
			Centroid: types.Centroid{Coordinates: types.FeatureVector{"value": 9}},
			Records: []types.Record{
				{ID: "6", Features: types.FeatureVector{"value": 6}},
				{ID: "8", Features: types.FeatureVector{"value": 8}},
			},
		},
		{
			Centroid: types.Centroid{Coordinates: types.FeatureVector{"value": 25}},
		},
	}
}

func TestPartitionEqual(t *testing.T) {
	a := samplePartition()
	b := samplePartition()
	assert.True(t, a.Equal(b))

	b[0].Centroid = types.Centroid{Coordinates: types.FeatureVector{"value": 10}}
	assert.False(t, a.Equal(b))

	c := samplePartition()
	c[0].Records = c[0].Records[:1]
	assert.False(t, a.Equal(c))

	d := samplePartition()
	d[0].Records[0].ID = "7"
	assert.False(t, a.Equal(d))

	assert.False(t, a.Equal(a[:1]))
}

func TestPartitionRecordCount(t *testing.T) {
	assert.Equal(t, 2, samplePartition().RecordCount())
	assert.Zero(t, cluster.Partition{}.RecordCount())
}

func TestClusterSummary(t *testing.T) {
	p := samplePartition()

	assert.Equal(t, "Centroid (value=9) Record Identifiers: [6, 8]", p[0].Summary())
	// Empty clusters still render, with an empty identifier list.
	assert.Equal(t, "Centroid (value=25) Record Identifiers: []", p[1].Summary())
}

func TestPartitionSummary(t *testing.T) {
	want := "Centroid (value=9) Record Identifiers: [6, 8]\n" +
		"Centroid (value=25) Record Identifiers: []"
	assert.Equal(t, want, samplePartition().Summary())
}
