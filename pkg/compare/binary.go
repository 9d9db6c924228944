package compare

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/sdejongh/resultdiff/pkg/models"
	"github.com/sdejongh/resultdiff/pkg/storage"
)

// BinaryComparator compares files chunk by chunk without loading them whole.
// It reports the first differing byte offset in the reason.
type BinaryComparator struct {
	bufferSize int
	bufferPool *sync.Pool
}

// NewBinaryComparator creates a new streaming comparator
func NewBinaryComparator(bufferSize int) *BinaryComparator {
	if bufferSize < 4096 {
		bufferSize = 4096
	}
	return &BinaryComparator{
		bufferSize: bufferSize,
		bufferPool: &sync.Pool{
			New: func() interface{} {
				buf := make([]byte, bufferSize)
				return &buf
			},
		},
	}
}

// Compare compares two files byte-by-byte
func (c *BinaryComparator) Compare(ctx context.Context, expected, actual storage.Backend, expectedName, actualName string) (*Comparison, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	expectedInfo, err := expected.Stat(ctx, expectedName)
	if err != nil {
		return readError(expectedName, actualName, "failed to stat expected file", err), nil
	}
	actualInfo, err := actual.Stat(ctx, actualName)
	if err != nil {
		return readError(expectedName, actualName, "failed to stat actual file", err), nil
	}

	// Quick check: if sizes differ, files are different
	if expectedInfo.Size != actualInfo.Size {
		return &Comparison{
			ExpectedName: expectedName,
			ActualName:   actualName,
			Result:       models.ResultDifferent,
			Reason:       fmt.Sprintf("size mismatch: expected=%d, actual=%d", expectedInfo.Size, actualInfo.Size),
		}, nil
	}

	expectedReader, err := expected.Read(ctx, expectedName)
	if err != nil {
		return readError(expectedName, actualName, "failed to open expected file", err), nil
	}
	defer expectedReader.Close()

	actualReader, err := actual.Read(ctx, actualName)
	if err != nil {
		return readError(expectedName, actualName, "failed to open actual file", err), nil
	}
	defer actualReader.Close()

	expectedBufPtr := c.bufferPool.Get().(*[]byte)
	defer c.bufferPool.Put(expectedBufPtr)
	expectedBuf := *expectedBufPtr

	actualBufPtr := c.bufferPool.Get().(*[]byte)
	defer c.bufferPool.Put(actualBufPtr)
	actualBuf := *actualBufPtr

	var offset int64
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		expectedN, expectedErr := io.ReadFull(expectedReader, expectedBuf)
		actualN, actualErr := io.ReadFull(actualReader, actualBuf)

		if expectedErr != nil && !isEOF(expectedErr) {
			return readError(expectedName, actualName, "failed to read expected file", expectedErr), nil
		}
		if actualErr != nil && !isEOF(actualErr) {
			return readError(expectedName, actualName, "failed to read actual file", actualErr), nil
		}

		n := min(expectedN, actualN)
		if !bytes.Equal(expectedBuf[:n], actualBuf[:n]) {
			for i := 0; i < n; i++ {
				if expectedBuf[i] != actualBuf[i] {
					offset += int64(i)
					break
				}
			}
			return &Comparison{
				ExpectedName: expectedName,
				ActualName:   actualName,
				Result:       models.ResultDifferent,
				Reason:       fmt.Sprintf("content differs at byte offset %d", offset),
			}, nil
		}
		offset += int64(n)

		// Files grew or shrank after the size check
		if expectedN != actualN {
			return &Comparison{
				ExpectedName: expectedName,
				ActualName:   actualName,
				Result:       models.ResultDifferent,
				Reason:       fmt.Sprintf("one file ended at byte offset %d", offset),
			}, nil
		}

		if isEOF(expectedErr) && isEOF(actualErr) {
			break
		}
	}

	return &Comparison{
		ExpectedName: expectedName,
		ActualName:   actualName,
		Result:       models.ResultEqual,
		Reason:       fmt.Sprintf("binary content matches (%d bytes)", offset),
	}, nil
}

// Name returns the comparator name
func (c *BinaryComparator) Name() string {
	return "binary"
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
