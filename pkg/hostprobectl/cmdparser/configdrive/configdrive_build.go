package configdrive

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hostprobe/hostprobe/pkg/configdrive"
)

var (
	manifestPath string
	targetDir    string
)

var configDriveBuild = &cobra.Command{
	Use:   "build",
	Args:  cobra.ExactArgs(0),
	Short: "Stage a config drive tree from a manifest.",
	Long: "Stage the files listed in a YAML manifest under a target directory.\n" +
		"Without --target, the drive is staged under a fresh directory in the\n" +
		"system temp directory and its path is printed.",
	Example: "hostprobectl configdrive build --manifest drive.yaml --target /var/lib/hostprobe/drive",
	RunE:    configDriveBuildRunE,
}

func init() {
	// ConfigDrive build flags
	configDriveBuild.Flags().StringVar(&manifestPath, "manifest", "", "Manifest describing the drive entries")
	configDriveBuild.Flags().StringVar(&targetDir, "target", "", "Directory to stage the drive under")
	_ = configDriveBuild.MarkFlagRequired("manifest")
}

func configDriveBuildRunE(_ *cobra.Command, _ []string) error {
	manifest, err := configdrive.LoadManifest(manifestPath)
	if err != nil {
		return err
	}
	entries, err := manifest.Resolve()
	if err != nil {
		return err
	}

	target := targetDir
	if target == "" {
		target = filepath.Join(os.TempDir(), "config-drive-"+uuid.New().String())
	}

	builder := configdrive.NewBuilder(entries...)
	if err := builder.Write(target); err != nil {
		return err
	}

	fmt.Println(target)
	return nil
}
