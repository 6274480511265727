// Package assets loads the two textures the world needs, concurrently and
// behind a single completion barrier.
package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	// formats accepted for texture files
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// MaxTextureSize caps the resampled edge length
const MaxTextureSize = 1024

var ErrUnknownBuiltin = errors.New("assets: unknown builtin texture")

// Textures holds the decoded sky and block images, both square with a
// power-of-two edge
type Textures struct {
	Sky   image.Image
	Block image.Image
}

// OpenFunc opens a texture file
type OpenFunc func(ctx context.Context, path string) (io.ReadCloser, error)

// Loader resolves texture sources. The zero value reads from disk.
type Loader struct {
	Open   OpenFunc
	Logger *slog.Logger
}

func openFile(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Open(path)
}

// Load is Loader{}.Load
func Load(ctx context.Context, sky, block string, timeout time.Duration) (Textures, error) {
	return Loader{}.Load(ctx, sky, block, timeout)
}

// Load fetches both textures concurrently. It returns once both are ready,
// as soon as either fails, or when timeout elapses. A fetch still running
// when Load returns early finishes in the background and its result is
// dropped.
func (l Loader) Load(ctx context.Context, sky, block string, timeout time.Duration) (Textures, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var tex Textures
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		tex.Sky, err = l.fetch(gctx, sky)
		return err
	})
	g.Go(func() (err error) {
		tex.Block, err = l.fetch(gctx, block)
		return err
	})

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	select {
	case err := <-done:
		if err != nil {
			return Textures{}, err
		}
		return tex, nil
	case <-gctx.Done():
	}

	if err := ctx.Err(); err != nil {
		return Textures{}, fmt.Errorf("assets: loading textures: %w", err)
	}
	// gctx ends with the first fetch error, or plain Canceled once Wait
	// has returned
	if cause := context.Cause(gctx); !errors.Is(cause, context.Canceled) {
		return Textures{}, cause
	}
	if err := <-done; err != nil {
		return Textures{}, err
	}
	return tex, nil
}

func (l Loader) fetch(ctx context.Context, src string) (image.Image, error) {
	start := time.Now()
	img, err := l.decode(ctx, src)
	if err != nil {
		return nil, err
	}
	out := Square(img)
	if l.Logger != nil {
		l.Logger.Debug("texture loaded", "src", src, "size", out.Bounds().Dx(), "took", time.Since(start))
	}
	return out, nil
}

func (l Loader) decode(ctx context.Context, src string) (image.Image, error) {
	if strings.HasPrefix(src, "builtin:") {
		img, ok := Builtin(src)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBuiltin, src)
		}
		return img, nil
	}

	open := l.Open
	if open == nil {
		open = openFile
	}
	rc, err := open(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", src, err)
	}
	defer rc.Close()

	img, _, err := image.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", src, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("assets: %s: %w", src, err)
	}
	return img, nil
}

// Square resamples img to a square whose edge is the next power of two of
// its longest side, capped at MaxTextureSize. Images already in that shape
// are returned unchanged.
func Square(img image.Image) image.Image {
	b := img.Bounds()
	edge := nextPow2(max(b.Dx(), b.Dy()))
	if edge > MaxTextureSize {
		edge = MaxTextureSize
	}
	if b.Dx() == edge && b.Dy() == edge && b.Min == (image.Point{}) {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, edge, edge))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
