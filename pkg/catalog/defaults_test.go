// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// firstMatch mirrors the engine's first-match-wins walk so the default table
// can be probed without importing the rewrite package.
func firstMatch(t *testing.T, c *Catalog, cat Category, value string) (string, bool) {
	t.Helper()
	for _, rule := range c.Compiled(cat) {
		if rule.Pattern.MatchString(value) {
			return rule.Replace, true
		}
	}
	return value, false
}

func TestDefault_ExecutableMappings(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "pipeline_guid", value: "{5918251B-2970-45A4-AB5F-01C3C588FE5A}", want: "Microsoft.Pipeline"},
		{name: "pipeline_guid_lowercase", value: "{5918251b-2970-45a4-ab5f-01c3c588fe5a}", want: "Microsoft.Pipeline"},
		{name: "pipeline_versioned", value: "SSIS.Pipeline.3", want: "Microsoft.Pipeline"},
		{name: "pipeline_older_generation", value: "SSIS.Pipeline.2", want: "Microsoft.Pipeline"},
		{name: "pipeline_unversioned", value: "SSIS.Pipeline", want: "Microsoft.Pipeline"},
		{name: "execute_package_task", value: "SSIS.ExecutePackageTask.3", want: "Microsoft.ExecutePackageTask"},
		{name: "package", value: "SSIS.Package.3", want: "Microsoft.Package"},
		{
			name:  "execute_sql_task_assembly_qualified",
			value: "Microsoft.SqlServer.Dts.Tasks.ExecuteSQLTask.ExecuteSQLTask, Microsoft.SqlServer.SQLTask, Version=11.0.0.0, Culture=neutral, PublicKeyToken=89845dcd8080cc91",
			want:  "Microsoft.ExecuteSQLTask",
		},
		{
			name:  "script_task_assembly_qualified",
			value: "Microsoft.SqlServer.Dts.Tasks.ScriptTask.ScriptTask, Microsoft.SqlServer.ScriptTask, Version=11.0.0.0, Culture=neutral, PublicKeyToken=89845dcd8080cc91",
			want:  "Microsoft.ScriptTask",
		},
		{
			name:  "reindex_task_assembly_qualified",
			value: "Microsoft.SqlServer.Management.DatabaseMaintenance.DbMaintenanceReindexTask, Microsoft.SqlServer.MaintenancePlanTasks, Version=11.0.0.0, Culture=neutral, PublicKeyToken=89845dcd8080cc91",
			want:  "Microsoft.DbMaintenanceReindexTask",
		},
		{
			name:  "reindex_task_namespace_qualified",
			value: "Microsoft.SqlServer.Management.DatabaseMaintenance.DbMaintenanceReindexTask",
			want:  "Microsoft.DbMaintenanceReindexTask",
		},
		{
			name:  "transfer_databases_task",
			value: "Microsoft.SqlServer.Management.Smo.TransferDatabasesTask, Microsoft.SqlServer.TransferDatabasesTask, Version=11.0.0.0, Culture=neutral, PublicKeyToken=89845dcd8080cc91",
			want:  "Microsoft.TransferDatabaseTask",
		},
	}

	c := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := firstMatch(t, c, CategoryExecutable, tt.value)
			assert.True(t, changed)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefault_ClassIDMappings(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "oledb_source_progid", value: "DTSAdapter.OLEDBSource.3", want: "Microsoft.OLEDBSource"},
		{name: "oledb_source_older_generation", value: "DTSAdapter.OLEDBSource.2", want: "Microsoft.OLEDBSource"},
		{name: "managed_component_wrapper", value: "DTS.ManagedComponentWrapper.3", want: "Microsoft.ManagedComponentWrapper"},
		{name: "derived_column", value: "DTSTransform.DerivedColumn.3", want: "Microsoft.DerivedColumn"},
		{name: "slowly_changing_dimension", value: "DTSTransform.SCD.3", want: "Microsoft.SlowlyChangingDimension"},
		{name: "lookup_guid", value: "{671046B0-AA63-4C9F-90E4-C06E0B710CE3}", want: "Microsoft.Lookup"},
		{name: "lookup_guid_lowercase", value: "{671046b0-aa63-4c9f-90e4-c06e0b710ce3}", want: "Microsoft.Lookup"},
		{name: "alternative_oledb_source_guid", value: "{5918251B-2970-45A4-AB5F-01C3C588FE5A}", want: "Microsoft.OLEDBSource"},
		{name: "flat_file_destination_guid", value: "{8DA75FED-1B7C-407D-B2AD-2B24209CCCA4}", want: "Microsoft.FlatFileDestination"},
	}

	c := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := firstMatch(t, c, CategoryClassID, tt.value)
			assert.True(t, changed)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefault_CanonicalFormsAreFixedPoints(t *testing.T) {
	// every replacement in the table must fall through the whole table
	// unmatched, otherwise a second run would rewrite already-modern files
	c := Default()
	for _, cat := range []Category{CategoryExecutable, CategoryClassID} {
		for _, rule := range c.Rules(cat) {
			got, changed := firstMatch(t, c, cat, rule.Replace)
			assert.False(t, changed, "replacement %q should not match any %s rule", rule.Replace, cat)
			assert.Equal(t, rule.Replace, got)
		}
	}
}

func TestDefault_SubstringsDoNotMatch(t *testing.T) {
	// patterns apply to whole values only; a legacy token embedded in a
	// larger string must not trigger a rewrite
	tests := []struct {
		name     string
		category Category
		value    string
	}{
		{name: "progid_with_prefix", category: CategoryClassID, value: "NotDTSAdapter.OLEDBSource.3"},
		{name: "progid_with_suffix", category: CategoryClassID, value: "DTSAdapter.OLEDBSource.3.Extra"},
		{name: "pipeline_with_suffix", category: CategoryExecutable, value: "SSIS.PipelineCustom"},
		{name: "guid_embedded", category: CategoryClassID, value: "prefix{671046B0-AA63-4C9F-90E4-C06E0B710CE3}"},
	}

	c := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, changed := firstMatch(t, c, tt.category, tt.value)
			assert.False(t, changed)
		})
	}
}

func TestDefault_IsStable(t *testing.T) {
	require.Same(t, Default(), Default())
}
