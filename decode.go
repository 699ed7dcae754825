package spriteframe

import (
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"

	// Registered image formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DecodeImage decodes a PNG, JPEG, GIF, BMP or WebP image and reports the
// format name.
func DecodeImage(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// LoadImageFile decodes the image stored at path.
func LoadImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	defer f.Close()
	img, _, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// LoadDropped decodes every regular file in fsys, in lexical walk order, as
// ebiten.DroppedFiles returns them. Files that fail to decode are reported
// in the joined error; the images that did decode are still returned.
func LoadDropped(fsys fs.FS) ([]image.Image, error) {
	var (
		imgs []image.Image
		errs []error
	)
	walkErr := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		f, err := fsys.Open(path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		defer f.Close()
		img, _, err := DecodeImage(f)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			return nil
		}
		imgs = append(imgs, img)
		return nil
	})
	if walkErr != nil {
		errs = append(errs, walkErr)
	}
	return imgs, errors.Join(errs...)
}
