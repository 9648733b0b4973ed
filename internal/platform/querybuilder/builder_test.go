package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("name", "age").
		From("player_histories").
		Where(Eq("position", "C"), IsNull("deleted_at")).
		OrderBy("name").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT name, age FROM player_histories WHERE position = $1 AND deleted_at IS NULL ORDER BY name LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "C" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderEmptyIn(t *testing.T) {
	query, args, err := Select("id").
		From("schedule_games").
		Where(In("opponent", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM schedule_games WHERE 1=0" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilderUpsertSuffix(t *testing.T) {
	query, args, err := InsertInto("vision_risk_scores").
		Columns("player_name", "combined_risk").
		Values("Test Player", 42.5).
		Suffix("ON CONFLICT (player_name) DO UPDATE SET combined_risk = EXCLUDED.combined_risk").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO vision_risk_scores (player_name, combined_risk) VALUES ($1, $2) " +
		"ON CONFLICT (player_name) DO UPDATE SET combined_risk = EXCLUDED.combined_risk"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Test Player" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilderRejectsRaggedRows(t *testing.T) {
	_, _, err := InsertInto("t").Columns("a", "b").Values("only-one").ToSQL()
	if err == nil {
		t.Fatal("expected error for row width mismatch")
	}
}

func TestInsertModelUsesDBTags(t *testing.T) {
	type row struct {
		Name string  `db:"name"`
		Risk float64 `db:"combined_risk"`
		skip string  `db:"ignored"`
	}
	_ = row{}.skip

	query, args, err := InsertModel("vision_risk_scores", row{Name: "P", Risk: 10}, "")
	if err != nil {
		t.Fatalf("insert model: %v", err)
	}
	if query != "INSERT INTO vision_risk_scores (name, combined_risk) VALUES ($1, $2)" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}
