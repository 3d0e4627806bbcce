package uploader

import "context"

// ReportUploader ships a serialized drift report to a remote object store.
// UploadReport returns the remote location of the stored object.
type ReportUploader interface {
	UploadReport(ctx context.Context, reportPath string) (string, error)
}
