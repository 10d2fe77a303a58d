// Package output renders review results for dry runs.
//
// Two formats are supported: [Text] prints the comment body exactly as it
// would be posted, [JSON] prints the structured result including file counts.
// [WriteResult] picks the format and handles destination selection between a
// file path and stdout.
package output
