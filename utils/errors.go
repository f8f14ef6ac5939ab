package utils

import "fmt"

// WrapInfoError returns a wrapped info error
func WrapInfoError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("info error: %w", err)
}

// WrapListError returns a wrapped list error
func WrapListError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("list error: %w", err)
}

// WrapUpdateError returns a wrapped update error
func WrapUpdateError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("update error: %w", err)
}

// WrapMoveError returns a wrapped move error
func WrapMoveError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("move error: %w", err)
}

// WrapCreateError returns a wrapped create error
func WrapCreateError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("create error: %w", err)
}

// WrapDeleteError returns a wrapped delete error
func WrapDeleteError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("delete error: %w", err)
}

// WrapUploadError returns a wrapped upload error
func WrapUploadError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("upload error: %w", err)
}

// WrapDownloadError returns a wrapped download error
func WrapDownloadError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("download error: %w", err)
}

// WrapShareError returns a wrapped share error
func WrapShareError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("share error: %w", err)
}
