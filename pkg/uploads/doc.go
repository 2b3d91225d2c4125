// Package uploads implements the upload pipeline: intake validation,
// collision-resistant storage naming, thumbnail derivation and metadata
// persistence.
//
// Files are written before the metadata row, so the two are not transactional.
// The pipeline removes any files it wrote when a later step fails; only a
// crash mid-pipeline can orphan a file.
package uploads
