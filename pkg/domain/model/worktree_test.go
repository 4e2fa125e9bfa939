package model_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/balaclava-guy/isofetch/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestWorkTreeLayout(t *testing.T) {
	tree := model.NewWorkTree("", 12345)

	gt.True(t, strings.HasSuffix(tree.Root, "hyper-iso-12345"))
	gt.Equal(t, tree.DownloadDir(), filepath.Join(tree.Root, "download"))
	gt.Equal(t, tree.OuterDir(), filepath.Join(tree.Root, "zip-extract"))
	gt.Equal(t, tree.InnerDir(), filepath.Join(tree.Root, "extract"))
	gt.Equal(t, tree.BundlePath("live-iso"), filepath.Join(tree.Root, "download", "live-iso.zip"))
}

func TestWorkTreeOverride(t *testing.T) {
	tree := model.NewWorkTree("/srv/staging", 12345)
	gt.Equal(t, tree.Root, "/srv/staging")
}

func TestWorkTreeKeyedByRunID(t *testing.T) {
	a := model.NewWorkTree("", 1)
	b := model.NewWorkTree("", 2)
	gt.NotEqual(t, a.Root, b.Root)
}

func TestWorkTreeCreateRemove(t *testing.T) {
	tree := model.WorkTree{Root: filepath.Join(t.TempDir(), "work")}

	gt.NoError(t, tree.Create())
	info, err := os.Stat(tree.Root)
	gt.NoError(t, err)
	gt.True(t, info.IsDir())

	gt.NoError(t, tree.Remove())
	_, err = os.Stat(tree.Root)
	gt.True(t, os.IsNotExist(err))
}
