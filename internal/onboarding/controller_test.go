package onboarding

import (
	"math/rand"
	"testing"

	"github.com/mark3labs/sorra/internal/profile"
	"github.com/mark3labs/sorra/internal/resume"
	"github.com/stretchr/testify/require"
)

func TestNextOf(t *testing.T) {
	t.Parallel()

	require.Equal(t, StepResume, NextOf(StepBasicInfo))
	require.Equal(t, StepPreferences, NextOf(StepResume))
	require.Equal(t, StepComplete, NextOf(StepPreferences))
	require.Equal(t, StepComplete, NextOf(StepComplete))
	require.Equal(t, StepBasicInfo, NextOf(Step(0)))
}

func TestPrevOf(t *testing.T) {
	t.Parallel()

	require.Equal(t, StepBasicInfo, PrevOf(StepBasicInfo))
	require.Equal(t, StepBasicInfo, PrevOf(StepResume))
	require.Equal(t, StepResume, PrevOf(StepPreferences))
	require.Equal(t, StepComplete, PrevOf(StepComplete))
}

func TestStepLabels(t *testing.T) {
	require.Equal(t, "resume", StepResume.String())
	require.Equal(t, "unknown", Step(9).String())
	require.Equal(t, "Preferences", StepPreferences.Title())
	require.Empty(t, Step(0).Title())
	require.False(t, Step(0).Valid())
	require.True(t, StepComplete.Valid())
	require.Len(t, FormSteps, 3)
}

func TestController_Initial(t *testing.T) {
	t.Parallel()

	c := New()
	require.Equal(t, StepBasicInfo, c.Step())
	require.NotEmpty(t, c.ID())
	require.Equal(t, profile.Draft{}, c.Draft())
	require.False(t, c.CanBack())
	require.False(t, c.CanSkip())
	require.False(t, c.Done())
	require.NotEqual(t, c.ID(), New().ID())
}

func TestController_BackAtFirstStepIsNoop(t *testing.T) {
	t.Parallel()

	c := New()
	require.Equal(t, StepBasicInfo, c.Back())
	require.Equal(t, StepBasicInfo, c.Step())
}

func TestController_ForwardStopsAtComplete(t *testing.T) {
	t.Parallel()

	c := New()
	require.Equal(t, StepResume, c.Next())
	require.True(t, c.CanBack())
	require.Equal(t, StepPreferences, c.Next())
	require.Equal(t, StepComplete, c.Next())
	require.True(t, c.Done())
	require.Equal(t, StepComplete, c.Next())

	// No way back out of the summary.
	require.False(t, c.CanBack())
	require.Equal(t, StepComplete, c.Back())
}

func TestController_Skip(t *testing.T) {
	t.Parallel()

	c := New()
	require.False(t, c.Skip(), "skip is only offered on the resume step")
	require.Equal(t, StepBasicInfo, c.Step())

	c.Next()
	require.True(t, c.CanSkip())
	require.True(t, c.Skip())
	require.Equal(t, StepPreferences, c.Step(), "skip advances exactly one step")

	require.False(t, c.Skip())
	require.Equal(t, StepPreferences, c.Step())
}

func TestController_SkipEqualsNext(t *testing.T) {
	t.Parallel()

	a, b := New(), New()
	a.Next()
	b.Next()
	a.Merge(profile.Patch{FullName: profile.String("Ada")})
	b.Merge(profile.Patch{FullName: profile.String("Ada")})

	a.Next()
	require.True(t, b.Skip())
	require.Equal(t, a.Step(), b.Step())
	require.Equal(t, a.Draft(), b.Draft())
}

func TestController_StepAlwaysInRange(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	c := New()
	for i := 0; i < 1000; i++ {
		before := c.Step()
		switch rng.Intn(3) {
		case 0:
			c.Next()
		case 1:
			c.Back()
		default:
			c.Skip()
		}
		require.True(t, c.Step().Valid())
		diff := int(c.Step()) - int(before)
		require.True(t, diff >= -1 && diff <= 1, "moved %d steps", diff)
		if before == StepComplete {
			require.Equal(t, StepComplete, c.Step())
		}
	}
}

func TestController_Merge(t *testing.T) {
	t.Parallel()

	c := New()
	d := c.Merge(profile.Patch{FullName: profile.String("Ada Lovelace")})
	require.Equal(t, "Ada Lovelace", d.FullName)

	d = c.Merge(profile.Patch{JobTitle: profile.String("Analyst")})
	require.Equal(t, "Ada Lovelace", d.FullName)
	require.Equal(t, "Analyst", d.JobTitle)

	before := c.Draft()
	require.Equal(t, before, c.Merge(profile.Patch{}))
}

func TestController_DraftIsSnapshot(t *testing.T) {
	t.Parallel()

	c := New()
	c.Merge(profile.Patch{Skills: profile.Strings([]string{"Go"})})

	d := c.Draft()
	d.Skills[0] = "Rust"
	d.FullName = "Mallory"
	require.Equal(t, []string{"Go"}, c.Draft().Skills)
	require.Empty(t, c.Draft().FullName)
}

func TestController_RejectedResumeLeavesDraftUnchanged(t *testing.T) {
	t.Parallel()

	c := New()
	c.Next()
	png := resume.Handle{Name: "me.png", Size: 1000, MIMEType: "image/png"}
	d := c.Merge(profile.Patch{Resume: &png})
	require.False(t, d.HasResume())

	big := resume.Handle{Name: "cv.pdf", Size: resume.MaxSize + 1, MIMEType: resume.TypePDF}
	d = c.Merge(profile.Patch{Resume: &big})
	require.False(t, d.HasResume())

	exact := resume.Handle{Name: "cv.pdf", Size: resume.MaxSize, MIMEType: resume.TypePDF}
	d = c.Merge(profile.Patch{Resume: &exact})
	require.True(t, d.HasResume())
}

func TestNewWithDraft(t *testing.T) {
	t.Parallel()

	seed := profile.Draft{FullName: "Grace", Industries: []string{"Finance"}}
	c := NewWithDraft(seed)
	seed.Industries[0] = "Retail"
	require.Equal(t, []string{"Finance"}, c.Draft().Industries)
	require.Equal(t, StepBasicInfo, c.Step())
}
