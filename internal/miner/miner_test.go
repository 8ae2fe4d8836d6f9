package miner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcorpus/kcorpus/internal/record"
)

const demoSource = `static struct demo_ops cfg = { .read = demo_read, .write = __internal_write };`

func TestMineSourceFiltersInternalTargets(t *testing.T) {
	bindings := New().MineSource("demo.c", demoSource)

	require.Len(t, bindings, 1)
	b := bindings[0]
	assert.Equal(t, "cfg", b.Variable)
	assert.Equal(t, "demo_ops", b.StructType)
	assert.Equal(t, "read", b.Field)
	assert.Equal(t, "demo_read", b.Target)
	assert.Equal(t, "demo.c", b.File)
	assert.Equal(t,
		`static struct demo_ops cfg = { .read = demo_read, .write = __internal_write }`,
		b.Snippet)
}

func TestMineSourceFilterDisabled(t *testing.T) {
	m := New()
	m.FilterPrefix = ""
	bindings := m.MineSource("demo.c", demoSource)

	require.Len(t, bindings, 2)
	assert.Equal(t, "__internal_write", bindings[1].Target)
}

func TestMineSourceNestedInitializer(t *testing.T) {
	src := `
static const struct file_operations proc_fops = {
	.owner = THIS_MODULE,
	.open = proc_open,
	.inner = { .nested = nested_handler },
	.release = proc_release,
};
`
	bindings := New().MineSource("proc.c", src)

	require.Len(t, bindings, 3)
	assert.Equal(t, "owner", bindings[0].Field)
	assert.Equal(t, "open", bindings[1].Field)
	assert.Equal(t, "release", bindings[2].Field)

	// The nested pair never surfaces as its own binding, and the nested
	// brace does not truncate the literal: .release is still found.
	for _, b := range bindings {
		assert.NotEqual(t, "nested", b.Field)
		assert.NotEqual(t, "nested_handler", b.Target)
	}
}

func TestMineSourceOrdering(t *testing.T) {
	src := `
struct net_device_ops first_ops = { .ndo_open = dev_open, .ndo_stop = dev_stop };
struct blk_mq_ops second_ops = { .queue_rq = queue_rq };
`
	bindings := New().MineSource("dev.c", src)

	require.Len(t, bindings, 3)
	assert.Equal(t, []string{"ndo_open", "ndo_stop", "queue_rq"},
		[]string{bindings[0].Field, bindings[1].Field, bindings[2].Field})
	assert.Equal(t, "first_ops", bindings[0].Variable)
	assert.Equal(t, "second_ops", bindings[2].Variable)
}

func TestMineSourceIgnoresOtherStructs(t *testing.T) {
	src := `static struct device_state st = { .flag = handle_flag };`
	assert.Empty(t, New().MineSource("st.c", src))
}

func TestMineSourceUnterminatedLiteral(t *testing.T) {
	src := `static struct demo_ops broken = { .read = demo_read,`
	assert.Empty(t, New().MineSource("broken.c", src))
}

func TestBindingRecord(t *testing.T) {
	b := Binding{
		Variable:   "cfg",
		StructType: "demo_ops",
		Field:      "read",
		Target:     "demo_read",
		Snippet:    "struct demo_ops cfg = { .read = demo_read }",
		File:       "demo.c",
	}

	r := b.Record()
	require.NoError(t, r.Validate())
	assert.Equal(t, record.TaskFunctionPointerTarget, r.Task)
	assert.Equal(t, "分析 cfg.read 指向哪个函数", r.Instruction)
	assert.Equal(t, b.Snippet, r.Input)
	assert.Equal(t,
		"cfg.read 指向 demo_read 函数。\n\n这是通过结构体初始化 .read = demo_read 赋值的。",
		r.Output)
	assert.Equal(t, "demo_ops", r.Metadata["struct"])
	assert.Equal(t, "demo.c", r.Metadata["file"])
}

func TestScanTreeMissingRoot(t *testing.T) {
	_, err := New().ScanTree(filepath.Join(t.TempDir(), "no_such_dir"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source tree")
}

func TestScanTreeIsolatesFileFailures(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.c"), []byte{0xff, 0xfe, 0x00, 0x7b}, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.c"), []byte(demoSource), 0o644))

	recs, err := New().ScanTree(dir)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "分析 cfg.read 指向哪个函数", recs[0].Instruction)
}

func TestScanTreeSkipsNonSourceFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(demoSource), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ops.h"), []byte(demoSource), 0o644))

	recs, err := New().ScanTree(dir)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestScanTreeFileCap(t *testing.T) {
	dir := t.TempDir()
	sources := map[string]string{
		"a.c": `struct a_ops a = { .open = a_open };`,
		"b.c": `struct b_ops b = { .open = b_open };`,
		"c.c": `struct c_ops c = { .open = c_open };`,
	}
	for name, src := range sources {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
	}

	m := New()
	m.MaxFiles = 2
	recs, err := m.ScanTree(dir)
	require.NoError(t, err)

	// Walk order is lexical, so the cap keeps a.c and b.c.
	require.Len(t, recs, 2)
	assert.Equal(t, "分析 a.open 指向哪个函数", recs[0].Instruction)
	assert.Equal(t, "分析 b.open 指向哪个函数", recs[1].Instruction)
}

func TestScanTreeWalksSubdirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "drivers")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "demo.c"), []byte(demoSource), 0o644))

	recs, err := New().ScanTree(dir)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}
