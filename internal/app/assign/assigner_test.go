package assign

import (
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/skillswap/skillswap/internal/app/skills"
	"github.com/skillswap/skillswap/internal/testutil"
)

func TestTargetCategories(t *testing.T) {
	tests := []struct {
		name string
		have []string
		want []string
		out  []string
	}{
		{
			name: "no skills yields no targets",
			out:  nil,
		},
		{
			name: "single known skill",
			have: []string{"React"},
			out:  []string{skills.FullStack},
		},
		{
			name: "have and want are unioned",
			have: []string{"Python"},
			want: []string{"AWS"},
			out:  []string{skills.DataAI, skills.CloudInfra},
		},
		{
			name: "duplicate categories collapse",
			have: []string{"React", "Node.js"},
			want: []string{"react"},
			out:  []string{skills.FullStack},
		},
		{
			name: "unknown skills map to the default category",
			have: []string{"Underwater Basket Weaving"},
			out:  []string{skills.DefaultCategory},
		},
		{
			name: "order follows the taxonomy, not the input",
			have: []string{"Unity", "Docker", "React"},
			out:  []string{skills.FullStack, skills.CloudInfra, skills.CreativeGame},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TargetCategories(tt.have, tt.want)
			if !reflect.DeepEqual(got, tt.out) {
				t.Errorf("TargetCategories(%v, %v) = %v, want %v", tt.have, tt.want, got, tt.out)
			}
		})
	}
}

func TestReconcileUser_JoinsMatchingGroups(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)

	u := fx.CreateUser(ctx, "Ada Dev", "ada@test.com",
		[]string{"React"}, []string{"Python"})

	a := New(db, zap.NewNop())
	joined, err := a.ReconcileUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("ReconcileUser failed: %v", err)
	}
	want := []string{skills.FullStack, skills.DataAI}
	if !reflect.DeepEqual(joined, want) {
		t.Fatalf("joined = %v, want %v", joined, want)
	}

	for _, name := range want {
		g := fx.GetGroupByName(ctx, name)
		if !g.HasMember(u.ID) {
			t.Errorf("user missing from %q member set", name)
		}
		if len(g.Messages) != 1 {
			t.Errorf("%q: expected 1 join message, got %d", name, len(g.Messages))
		}
	}

	user := fx.GetUser(ctx, u.ID)
	if len(user.Groups) != 2 {
		t.Errorf("user has %d groups recorded, want 2", len(user.Groups))
	}
}

func TestReconcileUser_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)

	u := fx.CreateUser(ctx, "Repeat Runner", "repeat@test.com",
		[]string{"Docker"}, nil)

	a := New(db, zap.NewNop())
	first, err := a.ReconcileUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("first ReconcileUser failed: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("first run joined %v, want one group", first)
	}

	second, err := a.ReconcileUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("second ReconcileUser failed: %v", err)
	}
	if len(second) != 0 {
		t.Fatalf("second run joined %v, want nothing new", second)
	}

	g := fx.GetGroupByName(ctx, skills.CloudInfra)
	if len(g.Members) != 1 {
		t.Errorf("member set has %d entries, want 1", len(g.Members))
	}
	if len(g.Messages) != 1 {
		t.Errorf("message log has %d entries, want 1", len(g.Messages))
	}

	user := fx.GetUser(ctx, u.ID)
	if len(user.Groups) != 1 {
		t.Errorf("user groups = %d, want 1", len(user.Groups))
	}
}

func TestReconcileUser_SkillLessUserIsSkipped(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)

	u := fx.CreateUser(ctx, "Blank Profile", "blank@test.com", nil, nil)

	a := New(db, zap.NewNop())
	joined, err := a.ReconcileUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("ReconcileUser failed: %v", err)
	}
	if len(joined) != 0 {
		t.Fatalf("skill-less user joined %v", joined)
	}

	user := fx.GetUser(ctx, u.ID)
	if len(user.Groups) != 0 {
		t.Errorf("skill-less user has %d groups, want 0", len(user.Groups))
	}
}

func TestReconcileUser_NeverRemovesMemberships(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)

	// Member of a group their current skills no longer map to.
	u := fx.CreateUser(ctx, "Career Changer", "changer@test.com",
		[]string{"Figma"}, nil)
	old := fx.CreateCategoryGroup(ctx, skills.Security)
	fx.AddMember(ctx, old.ID, u.ID)

	a := New(db, zap.NewNop())
	if _, err := a.ReconcileUser(ctx, u.ID); err != nil {
		t.Fatalf("ReconcileUser failed: %v", err)
	}

	g := fx.GetGroupByName(ctx, skills.Security)
	if !g.HasMember(u.ID) {
		t.Error("reconciliation removed an existing membership")
	}
}

func TestReconcileUser_ThreeCategories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)

	u := fx.CreateUser(ctx, "Polyglot", "polyglot@test.com",
		[]string{"Python", "AWS"}, []string{"Unity"})

	a := New(db, zap.NewNop())
	joined, err := a.ReconcileUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("ReconcileUser failed: %v", err)
	}
	want := []string{skills.DataAI, skills.CloudInfra, skills.CreativeGame}
	if !reflect.DeepEqual(joined, want) {
		t.Fatalf("joined = %v, want %v", joined, want)
	}

	for _, name := range want {
		g := fx.GetGroupByName(ctx, name)
		if len(g.Members) != 1 || !g.HasMember(u.ID) {
			t.Errorf("%q members = %d", name, len(g.Members))
		}
		if len(g.Messages) != 1 {
			t.Errorf("%q messages = %d, want 1", name, len(g.Messages))
		}
	}
}

func TestBulkReconcileAll_Counters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)

	// One user with skills, one without, one already fully assigned.
	fx.CreateUser(ctx, "Skilled", "skilled@test.com", []string{"Swift"}, nil)
	fx.CreateUser(ctx, "Unskilled", "unskilled@test.com", nil, nil)
	settled := fx.CreateUser(ctx, "Settled", "settled@test.com", []string{"Unity"}, nil)

	a := New(db, zap.NewNop())
	if _, err := a.ReconcileUser(ctx, settled.ID); err != nil {
		t.Fatalf("pre-assign failed: %v", err)
	}

	res, err := a.BulkReconcileAll(ctx)
	if err != nil {
		t.Fatalf("BulkReconcileAll failed: %v", err)
	}

	if res.TotalUsers != 3 {
		t.Errorf("total = %d, want 3", res.TotalUsers)
	}
	// Skilled gains Mobile; Unskilled gains the default group; Settled gains nothing.
	if res.Assigned != 2 {
		t.Errorf("assigned = %d, want 2", res.Assigned)
	}
	if res.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", res.Skipped)
	}
	if res.AssignedToDefault != 1 {
		t.Errorf("assignedToDefault = %d, want 1", res.AssignedToDefault)
	}

	def := fx.GetGroupByName(ctx, skills.DefaultCategory)
	if len(def.Members) != 1 {
		t.Errorf("default group has %d members, want 1", len(def.Members))
	}
}

func TestBulkReconcileAll_SecondRunIsAllSkips(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)

	fx.CreateUser(ctx, "One", "one@test.com", []string{"Python"}, nil)
	fx.CreateUser(ctx, "Two", "two@test.com", nil, nil)

	a := New(db, zap.NewNop())
	if _, err := a.BulkReconcileAll(ctx); err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	res, err := a.BulkReconcileAll(ctx)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if res.Assigned != 0 {
		t.Errorf("second run assigned = %d, want 0", res.Assigned)
	}
	if res.Skipped != res.TotalUsers {
		t.Errorf("second run skipped = %d, want %d", res.Skipped, res.TotalUsers)
	}
	// The skill-less user is still counted as default-policy even when the
	// membership already exists.
	if res.AssignedToDefault != 1 {
		t.Errorf("assignedToDefault = %d, want 1", res.AssignedToDefault)
	}
}
